package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// DeliverWorkCommandHandler handles work delivery by the professional.
type DeliverWorkCommandHandler struct {
	executor TransitionExecutor
}

// NewDeliverWorkCommandHandler creates a handler for work delivery.
func NewDeliverWorkCommandHandler(executor TransitionExecutor) DeliverWorkCommandHandler {
	return DeliverWorkCommandHandler{executor: executor}
}

// Handle marks the order as delivered and starts the client response window.
func (h DeliverWorkCommandHandler) Handle(ctx context.Context, cmd DeliverWorkCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.DeliverWork(cmd.ActorID(), cmd.Message(), cmd.Files(), now)
		})
}
