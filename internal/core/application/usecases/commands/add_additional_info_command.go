package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	ErrAddAdditionalInfoCommandIsNotConstructed = errors.New(
		"AddAdditionalInfoCommand must be created via NewAddAdditionalInfoCommand constructor",
	)
	ErrInfoContentIsRequired = errors.New("an info text or at least one file is required")
)

// AddAdditionalInfoCommand represents the client attaching supplementary
// requirements or materials to an order that is still being worked on.
type AddAdditionalInfoCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	text  string
	files []order.FileRef
}

// NewAddAdditionalInfoCommand creates a command for the client to attach
// additional information. Requires a text or at least one file.
func NewAddAdditionalInfoCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	text string,
	files []order.FileRef,
) (AddAdditionalInfoCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return AddAdditionalInfoCommand{}, err
	}

	if text == "" && len(files) == 0 {
		return AddAdditionalInfoCommand{}, ErrInfoContentIsRequired
	}

	return AddAdditionalInfoCommand{
		transitionCommand: base,
		text:              text,
		files:             files,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAdditionalInfoCommand) Validate() error {
	return c.validateConstructed(ErrAddAdditionalInfoCommandIsNotConstructed)
}

// Text returns the supplementary information text.
func (c AddAdditionalInfoCommand) Text() string {
	return c.text
}

// Files returns the attached files.
func (c AddAdditionalInfoCommand) Files() []order.FileRef {
	return c.files
}
