package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// RespondToDisputeCommandHandler handles the respondent's answer to a dispute.
type RespondToDisputeCommandHandler struct {
	executor TransitionExecutor
}

// NewRespondToDisputeCommandHandler creates a handler for dispute responses.
func NewRespondToDisputeCommandHandler(executor TransitionExecutor) RespondToDisputeCommandHandler {
	return RespondToDisputeCommandHandler{executor: executor}
}

// Handle moves the dispute into negotiation and starts the negotiation window.
func (h RespondToDisputeCommandHandler) Handle(
	ctx context.Context,
	cmd RespondToDisputeCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.RespondToDispute(cmd.ActorID(), cmd.CounterOffer(), now)
		})
}
