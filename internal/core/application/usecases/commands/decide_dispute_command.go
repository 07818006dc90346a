package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDecideDisputeCommandIsNotConstructed = errors.New(
	"DecideDisputeCommand must be created via NewDecideDisputeCommand constructor",
)

// DecideDisputeCommand represents the admin ruling on a dispute under
// arbitration. The winner receives the escrowed amount; the loser forfeits
// it plus the arbitration fee.
type DecideDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	winnerID      kernel.UUID
	version       int
	decisionNotes string

	guard guard.ConstructorGuard
}

// NewDecideDisputeCommand creates a command for the admin to close a dispute
// under arbitration in favor of the given party.
func NewDecideDisputeCommand(
	orderID kernel.UUID,
	winnerID kernel.UUID,
	version int,
	decisionNotes string,
) (DecideDisputeCommand, error) {
	command := DecideDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setWinnerID(winnerID),
		command.setVersion(version),
	); err != nil {
		return DecideDisputeCommand{}, err
	}

	command.decisionNotes = decisionNotes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DecideDisputeCommand) Validate() error {
	return c.guard.Validate(ErrDecideDisputeCommandIsNotConstructed)
}

// OrderID returns the identifier of the disputed order.
func (c DecideDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// WinnerID returns the party the ruling favors.
func (c DecideDisputeCommand) WinnerID() kernel.UUID {
	return c.winnerID
}

// Version returns the aggregate version the admin last observed.
func (c DecideDisputeCommand) Version() int {
	return c.version
}

// DecisionNotes returns the admin's ruling notes.
func (c DecideDisputeCommand) DecisionNotes() string {
	return c.decisionNotes
}

func (c *DecideDisputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DecideDisputeCommand) setWinnerID(winnerID kernel.UUID) error {
	if err := winnerID.Validate(); err != nil {
		return err
	}

	c.winnerID = winnerID
	return nil
}

func (c *DecideDisputeCommand) setVersion(version int) error {
	if version < 0 {
		return ErrVersionIsNegative
	}

	c.version = version
	return nil
}
