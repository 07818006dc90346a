package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// ErrVersionIsNegative indicates a command carried a negative expected
// version. External callers must pass the version they last observed.
var ErrVersionIsNegative = errors.New("version must not be negative")

// transitionCommand carries the fields every order transition command
// shares: the target order, the acting party, and the aggregate version the
// caller last observed for optimistic concurrency control.
type transitionCommand struct {
	orderID kernel.UUID
	actorID kernel.UUID
	version int

	guard guard.ConstructorGuard
}

func newTransitionCommand(orderID, actorID kernel.UUID, version int) (transitionCommand, error) {
	command := transitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setVersion(version),
	); err != nil {
		return transitionCommand{}, err
	}

	return command, nil
}

// OrderID returns the identifier of the order the command targets.
func (c transitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the party issuing the command.
func (c transitionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Version returns the aggregate version the caller last observed.
func (c transitionCommand) Version() int {
	return c.version
}

func (c transitionCommand) validateConstructed(notConstructed error) error {
	return c.guard.Validate(notConstructed)
}

func (c *transitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *transitionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *transitionCommand) setVersion(version int) error {
	if version < 0 {
		return ErrVersionIsNegative
	}

	c.version = version
	return nil
}
