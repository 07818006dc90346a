package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OpenDisputeCommandHandler handles dispute creation by either party.
type OpenDisputeCommandHandler struct {
	executor TransitionExecutor
}

// NewOpenDisputeCommandHandler creates a handler for opening disputes.
func NewOpenDisputeCommandHandler(executor TransitionExecutor) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{executor: executor}
}

// Handle opens the dispute, freezes the escrowed funds, and starts the
// respondent's response window.
func (h OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.OpenDispute(
				cmd.ActorID(),
				cmd.Requirements(),
				cmd.UnmetRequirements(),
				cmd.Offer(),
				cmd.Evidence(),
				now,
			)
		})
}
