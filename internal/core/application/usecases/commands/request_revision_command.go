package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrRequestRevisionCommandIsNotConstructed = errors.New(
		"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
	)
	ErrRevisionReasonIsRequired = errors.New("revision reason is required")
)

// RequestRevisionCommand represents the client sending delivered work back
// for rework. Requesting a revision pauses the auto-completion countdown.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	reason  string
	message string
	files   []order.FileRef
}

// NewRequestRevisionCommand creates a command for the client to request a
// revision of delivered work. A reason is mandatory.
func NewRequestRevisionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	reason string,
	message string,
	files []order.FileRef,
) (RequestRevisionCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RequestRevisionCommand{}, err
	}

	if reason == "" {
		return RequestRevisionCommand{}, ErrRevisionReasonIsRequired
	}

	return RequestRevisionCommand{
		transitionCommand: base,
		reason:            reason,
		message:           message,
		files:             files,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRevisionCommand) Validate() error {
	return c.validateConstructed(ErrRequestRevisionCommandIsNotConstructed)
}

// Reason returns the stated revision reason.
func (c RequestRevisionCommand) Reason() string {
	return c.reason
}

// Message returns the client's detailed revision notes.
func (c RequestRevisionCommand) Message() string {
	return c.message
}

// Files returns the supporting attachments.
func (c RequestRevisionCommand) Files() []order.FileRef {
	return c.files
}
