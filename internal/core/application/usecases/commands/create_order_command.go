package commands

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrPartiesAreRequired       = errors.New("client and professional identifiers are required")
	ErrAmountIsInvalid          = errors.New("amount must be greater than 0")
	ErrExpectedDeliveryRequired = errors.New("expected delivery date is required")
)

// CreateOrderCommand represents a request to register a paid order between a
// client and a professional. The order amount is already held in escrow when
// the order enters the engine.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, professionalID, amount, due)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	clientID         kernel.UUID
	professionalID   kernel.UUID
	amount           kernel.Money
	expectedDelivery time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, requires a positive amount, and requires an
// expected delivery date.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	professionalID kernel.UUID,
	amount kernel.Money,
	expectedDelivery time.Time,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setParties(clientID, professionalID),
		command.setAmount(amount),
		command.setExpectedDelivery(expectedDelivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the buying party.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// ProfessionalID returns the identifier of the performing party.
func (c CreateOrderCommand) ProfessionalID() kernel.UUID {
	return c.professionalID
}

// Amount returns the escrowed order amount in minor currency units.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// ExpectedDelivery returns the agreed delivery date.
func (c CreateOrderCommand) ExpectedDelivery() time.Time {
	return c.expectedDelivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(clientID, professionalID kernel.UUID) error {
	if clientID.IsZero() || professionalID.IsZero() {
		return ErrPartiesAreRequired
	}

	c.clientID = clientID
	c.professionalID = professionalID
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setExpectedDelivery(expectedDelivery time.Time) error {
	if expectedDelivery.IsZero() {
		return ErrExpectedDeliveryRequired
	}

	c.expectedDelivery = expectedDelivery
	return nil
}
