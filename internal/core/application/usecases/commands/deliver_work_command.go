package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrDeliverWorkCommandIsNotConstructed = errors.New(
		"DeliverWorkCommand must be created via NewDeliverWorkCommand constructor",
	)
	ErrDeliveryContentIsRequired = errors.New("a delivery message or at least one file is required")
)

// DeliverWorkCommand represents the professional submitting finished work on
// an order. A successful delivery starts the client response window after
// which the order auto-completes.
type DeliverWorkCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	message string
	files   []order.FileRef
}

// NewDeliverWorkCommand creates a command for the professional to deliver
// work. Requires a message or at least one attached file.
func NewDeliverWorkCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	message string,
	files []order.FileRef,
) (DeliverWorkCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return DeliverWorkCommand{}, err
	}

	if message == "" && len(files) == 0 {
		return DeliverWorkCommand{}, ErrDeliveryContentIsRequired
	}

	return DeliverWorkCommand{
		transitionCommand: base,
		message:           message,
		files:             files,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverWorkCommand) Validate() error {
	return c.validateConstructed(ErrDeliverWorkCommandIsNotConstructed)
}

// Message returns the delivery message.
func (c DeliverWorkCommand) Message() string {
	return c.message
}

// Files returns the delivered file attachments.
func (c DeliverWorkCommand) Files() []order.FileRef {
	return c.files
}
