package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	ErrRequestExtensionCommandIsNotConstructed = errors.New(
		"RequestExtensionCommand must be created via NewRequestExtensionCommand constructor",
	)
	ErrNewDeliveryDateIsRequired = errors.New("new delivery date is required")
)

// RequestExtensionCommand represents the professional asking the client for
// a later delivery date.
type RequestExtensionCommand struct { //nolint:recvcheck //using for validation
	transitionCommand

	newDeliveryDate time.Time
	reason          string
}

// NewRequestExtensionCommand creates a command for the professional to
// request a deadline extension. The proposed date must be set; the domain
// verifies it falls after the current expected delivery.
func NewRequestExtensionCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	version int,
	newDeliveryDate time.Time,
	reason string,
) (RequestExtensionCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return RequestExtensionCommand{}, err
	}

	if newDeliveryDate.IsZero() {
		return RequestExtensionCommand{}, ErrNewDeliveryDateIsRequired
	}

	return RequestExtensionCommand{
		transitionCommand: base,
		newDeliveryDate:   newDeliveryDate,
		reason:            reason,
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestExtensionCommand) Validate() error {
	return c.validateConstructed(ErrRequestExtensionCommandIsNotConstructed)
}

// NewDeliveryDate returns the proposed delivery date.
func (c RequestExtensionCommand) NewDeliveryDate() time.Time {
	return c.newDeliveryDate
}

// Reason returns the optional extension reason.
func (c RequestExtensionCommand) Reason() string {
	return c.reason
}
