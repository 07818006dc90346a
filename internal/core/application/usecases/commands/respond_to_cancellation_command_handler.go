package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RespondToCancellationCommandHandler handles responses to cancellation requests.
type RespondToCancellationCommandHandler struct {
	executor TransitionExecutor
}

// NewRespondToCancellationCommandHandler creates a handler for cancellation responses.
func NewRespondToCancellationCommandHandler(executor TransitionExecutor) RespondToCancellationCommandHandler {
	return RespondToCancellationCommandHandler{executor: executor}
}

// Handle approves or rejects the pending cancellation request. Approval
// cancels the order and refunds the client.
func (h RespondToCancellationCommandHandler) Handle(
	ctx context.Context,
	cmd RespondToCancellationCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RespondToCancellation(cmd.ActorID(), cmd.Approve(), now)
		})
}
