package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RateOrderCommandHandler handles order rating by the client.
type RateOrderCommandHandler struct {
	executor TransitionExecutor
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(executor TransitionExecutor) RateOrderCommandHandler {
	return RateOrderCommandHandler{executor: executor}
}

// Handle records the client's rating on a completed order.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RateOrder(cmd.ActorID(), cmd.Stars(), cmd.Comment(), now)
		})
}
