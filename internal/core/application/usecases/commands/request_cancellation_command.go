package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrRequestCancellationCommandIsNotConstructed = errors.New(
		"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")
)

// RequestCancellationCommand represents either party asking to cancel an
// order in flight. The counterpart gets a response window; silence approves
// the cancellation.
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	reason string
	files  []order.FileRef
}

// NewRequestCancellationCommand creates a command to request an order
// cancellation. A reason is mandatory; files are optional supporting material.
func NewRequestCancellationCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	reason string,
	files []order.FileRef,
) (RequestCancellationCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RequestCancellationCommand{}, err
	}

	if reason == "" {
		return RequestCancellationCommand{}, ErrCancellationReasonIsRequired
	}

	return RequestCancellationCommand{
		transitionCommand: base,
		reason:            reason,
		files:             files,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.validateConstructed(ErrRequestCancellationCommandIsNotConstructed)
}

// Reason returns the stated cancellation reason.
func (c RequestCancellationCommand) Reason() string {
	return c.reason
}

// Files returns the supporting attachments.
func (c RequestCancellationCommand) Files() []order.FileRef {
	return c.files
}
