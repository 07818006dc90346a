package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// AcceptDeliveryCommandHandler handles delivery acceptance by the client.
type AcceptDeliveryCommandHandler struct {
	executor TransitionExecutor
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(executor TransitionExecutor) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{executor: executor}
}

// Handle completes the order and releases the escrowed amount to the professional.
func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.AcceptDelivery(cmd.ActorID(), now)
		})
}
