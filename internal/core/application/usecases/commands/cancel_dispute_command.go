package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrCancelDisputeCommandIsNotConstructed = errors.New(
	"CancelDisputeCommand must be created via NewCancelDisputeCommand constructor",
)

// CancelDisputeCommand represents a party dropping the dispute, returning
// the order to the state it was in when the dispute was opened.
type CancelDisputeCommand struct { //nolint:recvcheck //using for validation
	transitionCommand
}

// NewCancelDisputeCommand creates a command to cancel an active dispute.
func NewCancelDisputeCommand(orderID, actorID kernel.UUID, version int) (CancelDisputeCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return CancelDisputeCommand{}, err
	}

	return CancelDisputeCommand{transitionCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDisputeCommand) Validate() error {
	return c.validateConstructed(ErrCancelDisputeCommandIsNotConstructed)
}
