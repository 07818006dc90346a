package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

var ErrWithdrawCancellationCommandIsNotConstructed = errors.New(
	"WithdrawCancellationCommand must be created via NewWithdrawCancellationCommand constructor",
)

// WithdrawCancellationCommand represents the requester withdrawing their own
// pending cancellation request, resuming the order in its prior status.
type WithdrawCancellationCommand struct { //nolint:recvcheck //using for validation
	transitionCommand
}

// NewWithdrawCancellationCommand creates a command to withdraw a pending
// cancellation request.
func NewWithdrawCancellationCommand(orderID, actorID kernel.UUID, version int) (WithdrawCancellationCommand, error) {
	base, err := newTransitionCommand(orderID, actorID, version)
	if err != nil {
		return WithdrawCancellationCommand{}, err
	}

	return WithdrawCancellationCommand{transitionCommand: base}, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawCancellationCommand) Validate() error {
	return c.validateConstructed(ErrWithdrawCancellationCommandIsNotConstructed)
}
