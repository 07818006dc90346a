package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RequestCancellationCommandHandler handles cancellation requests from either party.
type RequestCancellationCommandHandler struct {
	executor TransitionExecutor
}

// NewRequestCancellationCommandHandler creates a handler for cancellation requests.
func NewRequestCancellationCommandHandler(executor TransitionExecutor) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{executor: executor}
}

// Handle opens a cancellation request and starts the counterpart's response window.
func (h RequestCancellationCommandHandler) Handle(
	ctx context.Context,
	cmd RequestCancellationCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RequestCancellation(cmd.ActorID(), cmd.Reason(), cmd.Files(), now)
		})
}
