package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRespondToDisputeCommandIsNotConstructed = errors.New(
	"RespondToDisputeCommand must be created via NewRespondToDisputeCommand constructor",
)

// RespondToDisputeCommand represents the respondent's first answer to an
// open dispute, moving it into negotiation. A counter-offer is optional.
type RespondToDisputeCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	counterOffer *kernel.Money
}

// NewRespondToDisputeCommand creates a command for the respondent to answer
// an open dispute, optionally with a counter-offer.
func NewRespondToDisputeCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	counterOffer *kernel.Money,
) (RespondToDisputeCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RespondToDisputeCommand{}, err
	}

	return RespondToDisputeCommand{
		transitionCommand: base,
		counterOffer:      counterOffer,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToDisputeCommand) Validate() error {
	return c.validateConstructed(ErrRespondToDisputeCommandIsNotConstructed)
}

// CounterOffer returns the respondent's counter-offer, or nil when none was made.
func (c RespondToDisputeCommand) CounterOffer() *kernel.Money {
	return c.counterOffer
}
