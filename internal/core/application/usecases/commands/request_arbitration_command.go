package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRequestArbitrationCommandIsNotConstructed = errors.New(
	"RequestArbitrationCommand must be created via NewRequestArbitrationCommand constructor",
)

// RequestArbitrationCommand represents a negotiating party escalating the
// dispute to admin arbitration. The requester must cover the arbitration fee,
// which is forfeited only if they lose.
type RequestArbitrationCommand struct { //nolint:recvcheck //using for validation
	transitionCommand
}

// NewRequestArbitrationCommand creates a command to escalate a dispute to
// admin arbitration.
func NewRequestArbitrationCommand(orderID, actorID kernel.UUID, version int) (RequestArbitrationCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RequestArbitrationCommand{}, err
	}

	return RequestArbitrationCommand{transitionCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestArbitrationCommand) Validate() error {
	return c.validateConstructed(ErrRequestArbitrationCommandIsNotConstructed)
}
