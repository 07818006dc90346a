package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// AddAdditionalInfoCommandHandler handles supplementary info added by the client.
type AddAdditionalInfoCommandHandler struct {
	executor TransitionExecutor
}

// NewAddAdditionalInfoCommandHandler creates a handler for adding order info.
func NewAddAdditionalInfoCommandHandler(executor TransitionExecutor) AddAdditionalInfoCommandHandler {
	return AddAdditionalInfoCommandHandler{executor: executor}
}

// Handle appends the client's additional information to the order.
func (h AddAdditionalInfoCommandHandler) Handle(
	ctx context.Context,
	cmd AddAdditionalInfoCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.AddAdditionalInfo(cmd.ActorID(), cmd.Text(), cmd.Files(), now)
		})
}
