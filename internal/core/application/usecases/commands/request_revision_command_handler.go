package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RequestRevisionCommandHandler handles revision requests by the client.
type RequestRevisionCommandHandler struct {
	executor TransitionExecutor
}

// NewRequestRevisionCommandHandler creates a handler for revision requests.
func NewRequestRevisionCommandHandler(executor TransitionExecutor) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{executor: executor}
}

// Handle opens a revision request and pauses the auto-completion countdown.
func (h RequestRevisionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestRevisionCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RequestRevision(cmd.ActorID(), cmd.Reason(), cmd.Message(), cmd.Files(), now)
		})
}
