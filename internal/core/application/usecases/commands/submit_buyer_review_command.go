package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var ErrSubmitBuyerReviewCommandIsNotConstructed = errors.New(
	"SubmitBuyerReviewCommand must be created via NewSubmitBuyerReviewCommand constructor",
)

// SubmitBuyerReviewCommand represents the professional reviewing the client
// after a completed order.
type SubmitBuyerReviewCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	stars   int
	comment string
}

// NewSubmitBuyerReviewCommand creates a command for the professional to
// review the client with one to five stars and an optional comment.
func NewSubmitBuyerReviewCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	stars int,
	comment string,
) (SubmitBuyerReviewCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return SubmitBuyerReviewCommand{}, err
	}

	if stars < 1 || stars > 5 {
		return SubmitBuyerReviewCommand{}, errs.NewValueIsOutOfRangeError("stars", stars, 1, 5)
	}

	return SubmitBuyerReviewCommand{
		transitionCommand: base,
		stars:             stars,
		comment:           comment,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBuyerReviewCommand) Validate() error {
	return c.validateConstructed(ErrSubmitBuyerReviewCommandIsNotConstructed)
}

// Stars returns the review value from 1 to 5.
func (c SubmitBuyerReviewCommand) Stars() int {
	return c.stars
}

// Comment returns the optional review comment.
func (c SubmitBuyerReviewCommand) Comment() string {
	return c.comment
}
