package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRespondToCancellationCommandIsNotConstructed = errors.New(
	"RespondToCancellationCommand must be created via NewRespondToCancellationCommand constructor",
)

// RespondToCancellationCommand represents the counterpart answering a pending
// cancellation request. Approval refunds the client; rejection resumes the
// order in its prior status.
type RespondToCancellationCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	approve bool
}

// NewRespondToCancellationCommand creates a command to approve or reject a
// pending cancellation request.
func NewRespondToCancellationCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	approve bool,
) (RespondToCancellationCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RespondToCancellationCommand{}, err
	}

	return RespondToCancellationCommand{
		transitionCommand: base,
		approve:           approve,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToCancellationCommand) Validate() error {
	return c.validateConstructed(ErrRespondToCancellationCommandIsNotConstructed)
}

// Approve reports whether the counterpart approves the cancellation.
func (c RespondToCancellationCommand) Approve() bool {
	return c.approve
}
