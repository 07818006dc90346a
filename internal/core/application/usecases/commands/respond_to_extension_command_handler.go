package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RespondToExtensionCommandHandler handles responses to extension requests.
type RespondToExtensionCommandHandler struct {
	executor TransitionExecutor
}

// NewRespondToExtensionCommandHandler creates a handler for extension responses.
func NewRespondToExtensionCommandHandler(executor TransitionExecutor) RespondToExtensionCommandHandler {
	return RespondToExtensionCommandHandler{executor: executor}
}

// Handle approves or rejects the pending extension request.
func (h RespondToExtensionCommandHandler) Handle(
	ctx context.Context,
	cmd RespondToExtensionCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RespondToExtension(cmd.ActorID(), cmd.Approve(), now)
		})
}
