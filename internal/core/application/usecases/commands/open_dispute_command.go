package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrOpenDisputeCommandIsNotConstructed = errors.New(
		"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
	)
	ErrDisputeRequirementsAreRequired = errors.New("dispute requirements are required")
)

// OpenDisputeCommand represents a party opening a dispute over the order.
// The claimant states the original requirements, which of them went unmet,
// and the amount they are willing to let the counterpart keep.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	requirements      string
	unmetRequirements string
	offer             kernel.Money
	evidence          []order.FileRef
}

// NewOpenDisputeCommand creates a command to open a dispute. Requirements
// are mandatory; the offer may be zero but never exceeds the order amount,
// which the domain verifies against the aggregate.
func NewOpenDisputeCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	requirements string,
	unmetRequirements string,
	offer kernel.Money,
	evidence []order.FileRef,
) (OpenDisputeCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return OpenDisputeCommand{}, err
	}

	if requirements == "" {
		return OpenDisputeCommand{}, ErrDisputeRequirementsAreRequired
	}

	return OpenDisputeCommand{
		transitionCommand: base,
		requirements:      requirements,
		unmetRequirements: unmetRequirements,
		offer:             offer,
		evidence:          evidence,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.validateConstructed(ErrOpenDisputeCommandIsNotConstructed)
}

// Requirements returns the claimant's statement of the agreed requirements.
func (c OpenDisputeCommand) Requirements() string {
	return c.requirements
}

// UnmetRequirements returns which requirements the claimant says went unmet.
func (c OpenDisputeCommand) UnmetRequirements() string {
	return c.unmetRequirements
}

// Offer returns the amount the claimant offers the counterpart.
func (c OpenDisputeCommand) Offer() kernel.Money {
	return c.offer
}

// Evidence returns the claimant's supporting attachments.
func (c OpenDisputeCommand) Evidence() []order.FileRef {
	return c.evidence
}
