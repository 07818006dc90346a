package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrRespondToRevisionCommandIsNotConstructed = errors.New(
	"RespondToRevisionCommand must be created via NewRespondToRevisionCommand constructor",
)

// RespondToRevisionCommand represents the professional accepting or rejecting
// a revision request. Rejection puts the order back in delivered status with
// a fresh client response window.
type RespondToRevisionCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	accept bool
	notes  string
}

// NewRespondToRevisionCommand creates a command for the professional to
// answer a pending revision request.
func NewRespondToRevisionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	accept bool,
	notes string,
) (RespondToRevisionCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RespondToRevisionCommand{}, err
	}

	return RespondToRevisionCommand{
		transitionCommand: base,
		accept:            accept,
		notes:             notes,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToRevisionCommand) Validate() error {
	return c.validateConstructed(ErrRespondToRevisionCommandIsNotConstructed)
}

// Accept reports whether the professional accepts the revision request.
func (c RespondToRevisionCommand) Accept() bool {
	return c.accept
}

// Notes returns the professional's optional response notes.
func (c RespondToRevisionCommand) Notes() string {
	return c.notes
}
