package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// CancelDisputeCommandHandler handles dispute cancellation by either party.
type CancelDisputeCommandHandler struct {
	executor TransitionExecutor
}

// NewCancelDisputeCommandHandler creates a handler for dispute cancellation.
func NewCancelDisputeCommandHandler(executor TransitionExecutor) CancelDisputeCommandHandler {
	return CancelDisputeCommandHandler{executor: executor}
}

// Handle drops the dispute and resumes the order in its pre-dispute state.
func (h CancelDisputeCommandHandler) Handle(ctx context.Context, cmd CancelDisputeCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.CancelDispute(cmd.ActorID(), now)
		})
}
