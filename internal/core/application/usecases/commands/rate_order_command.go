package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents the client rating a completed order.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	stars   int
	comment string
}

// NewRateOrderCommand creates a command for the client to rate a completed
// order with one to five stars and an optional comment.
func NewRateOrderCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	stars int,
	comment string,
) (RateOrderCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RateOrderCommand{}, err
	}

	if stars < 1 || stars > 5 {
		return RateOrderCommand{}, errs.NewValueIsOutOfRangeError("stars", stars, 1, 5)
	}

	return RateOrderCommand{
		transitionCommand: base,
		stars:             stars,
		comment:           comment,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.validateConstructed(ErrRateOrderCommandIsNotConstructed)
}

// Stars returns the rating value from 1 to 5.
func (c RateOrderCommand) Stars() int {
	return c.stars
}

// Comment returns the optional rating comment.
func (c RateOrderCommand) Comment() string {
	return c.comment
}
