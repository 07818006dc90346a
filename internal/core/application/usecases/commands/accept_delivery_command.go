package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents the client accepting delivered work,
// completing the order and releasing the escrowed amount to the professional.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	transitionCommand
}

// NewAcceptDeliveryCommand creates a command for the client to accept a delivery.
func NewAcceptDeliveryCommand(orderID, actorID kernel.UUID, version int) (AcceptDeliveryCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return AcceptDeliveryCommand{transitionCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.validateConstructed(ErrAcceptDeliveryCommandIsNotConstructed)
}
