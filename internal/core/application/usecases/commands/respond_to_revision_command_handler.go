package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RespondToRevisionCommandHandler handles responses to revision requests.
type RespondToRevisionCommandHandler struct {
	executor TransitionExecutor
}

// NewRespondToRevisionCommandHandler creates a handler for revision responses.
func NewRespondToRevisionCommandHandler(executor TransitionExecutor) RespondToRevisionCommandHandler {
	return RespondToRevisionCommandHandler{executor: executor}
}

// Handle accepts or rejects the pending revision request.
func (h RespondToRevisionCommandHandler) Handle(
	ctx context.Context,
	cmd RespondToRevisionCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RespondToRevision(cmd.ActorID(), cmd.Accept(), cmd.Notes(), now)
		})
}
