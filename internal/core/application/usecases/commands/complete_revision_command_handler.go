package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// CompleteRevisionCommandHandler handles revision redelivery by the professional.
type CompleteRevisionCommandHandler struct {
	executor TransitionExecutor
}

// NewCompleteRevisionCommandHandler creates a handler for revision completion.
func NewCompleteRevisionCommandHandler(executor TransitionExecutor) CompleteRevisionCommandHandler {
	return CompleteRevisionCommandHandler{executor: executor}
}

// Handle redelivers the reworked results and restarts the client response window.
func (h CompleteRevisionCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteRevisionCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.CompleteRevision(cmd.ActorID(), cmd.Message(), cmd.Files(), now)
		})
}
