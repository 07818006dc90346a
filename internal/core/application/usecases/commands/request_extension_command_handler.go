package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RequestExtensionCommandHandler handles deadline extension requests.
type RequestExtensionCommandHandler struct {
	executor TransitionExecutor
}

// NewRequestExtensionCommandHandler creates a handler for extension requests.
func NewRequestExtensionCommandHandler(executor TransitionExecutor) RequestExtensionCommandHandler {
	return RequestExtensionCommandHandler{executor: executor}
}

// Handle opens an extension request for the client to approve or reject.
func (h RequestExtensionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestExtensionCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RequestExtension(cmd.ActorID(), cmd.NewDeliveryDate(), cmd.Reason(), now)
		})
}
