package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in the pending status with their amount held in escrow.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	escrow     ports.EscrowGateway
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an escrow
// gateway to hold the order amount.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, escrow ports.EscrowGateway) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		escrow:     escrow,
	}
}

// Handle processes the order creation command. The order amount is held in
// escrow before the order is persisted; an order the client cannot fund is
// never created, and the hold is refunded if persistence fails.
// Returns the snapshot of the stored order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.ProfessionalID(),
		cmd.Amount(),
		cmd.ExpectedDelivery(),
	)
	if err != nil {
		return order.Snapshot{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.Snapshot{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = h.escrow.Hold(ctx, aggregate.ID(), cmd.ClientID(), cmd.Amount()); err != nil {
		return order.Snapshot{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		_ = h.escrow.Refund(ctx, aggregate.ID(), cmd.ClientID(), cmd.Amount())
		return order.Snapshot{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		_ = h.escrow.Refund(ctx, aggregate.ID(), cmd.ClientID(), cmd.Amount())
		return order.Snapshot{}, err
	}

	return aggregate.Snapshot(), nil
}
