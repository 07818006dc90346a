package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrCompleteRevisionCommandIsNotConstructed = errors.New(
		"CompleteRevisionCommand must be created via NewCompleteRevisionCommand constructor",
	)
	ErrRevisionContentIsRequired = errors.New("a revision message or at least one file is required")
)

// CompleteRevisionCommand represents the professional redelivering reworked
// results, which puts the order back in delivered status with a fresh client
// response window.
type CompleteRevisionCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	message string
	files   []order.FileRef
}

// NewCompleteRevisionCommand creates a command for the professional to
// deliver the reworked results. Requires a message or at least one file.
func NewCompleteRevisionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	message string,
	files []order.FileRef,
) (CompleteRevisionCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return CompleteRevisionCommand{}, err
	}

	if message == "" && len(files) == 0 {
		return CompleteRevisionCommand{}, ErrRevisionContentIsRequired
	}

	return CompleteRevisionCommand{
		transitionCommand: base,
		message:           message,
		files:             files,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRevisionCommand) Validate() error {
	return c.validateConstructed(ErrCompleteRevisionCommandIsNotConstructed)
}

// Message returns the redelivery message.
func (c CompleteRevisionCommand) Message() string {
	return c.message
}

// Files returns the reworked file attachments.
func (c CompleteRevisionCommand) Files() []order.FileRef {
	return c.files
}
