package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRespondToExtensionCommandIsNotConstructed = errors.New(
	"RespondToExtensionCommand must be created via NewRespondToExtensionCommand constructor",
)

// RespondToExtensionCommand represents the client approving or rejecting a
// pending extension request. Approval moves the expected delivery date.
type RespondToExtensionCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	approve bool
}

// NewRespondToExtensionCommand creates a command for the client to answer a
// pending extension request.
func NewRespondToExtensionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	approve bool,
) (RespondToExtensionCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RespondToExtensionCommand{}, err
	}

	return RespondToExtensionCommand{
		transitionCommand: base,
		approve:           approve,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToExtensionCommand) Validate() error {
	return c.validateConstructed(ErrRespondToExtensionCommandIsNotConstructed)
}

// Approve reports whether the client approves the extension.
func (c RespondToExtensionCommand) Approve() bool {
	return c.approve
}
