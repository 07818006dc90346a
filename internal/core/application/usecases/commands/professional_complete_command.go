package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrProfessionalCompleteCommandIsNotConstructed = errors.New(
	"ProfessionalCompleteCommand must be created via NewProfessionalCompleteCommand constructor",
)

// ProfessionalCompleteCommand represents the professional finalizing a
// delivered order after the client response window has elapsed without a
// reaction from the client.
type ProfessionalCompleteCommand struct { //nolint:recvcheck //using for validation
	transitionCommand
}

// NewProfessionalCompleteCommand creates a command for the professional to
// finalize a delivered order.
func NewProfessionalCompleteCommand(orderID, actorID kernel.UUID, version int) (ProfessionalCompleteCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return ProfessionalCompleteCommand{}, err
	}

	return ProfessionalCompleteCommand{transitionCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProfessionalCompleteCommand) Validate() error {
	return c.validateConstructed(ErrProfessionalCompleteCommandIsNotConstructed)
}
