package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// DecideDisputeCommandHandler handles admin rulings on arbitrated disputes.
// The configured arbitration fee is charged against the losing party as part
// of the escrow settlement.
type DecideDisputeCommandHandler struct {
	executor       TransitionExecutor
	arbitrationFee kernel.Money
}

// NewDecideDisputeCommandHandler creates a handler for admin dispute rulings.
func NewDecideDisputeCommandHandler(
	executor TransitionExecutor,
	arbitrationFee kernel.Money,
) DecideDisputeCommandHandler {
	return DecideDisputeCommandHandler{
		executor:       executor,
		arbitrationFee: arbitrationFee,
	}
}

// Handle closes the dispute in favor of the winner and settles the escrow.
func (h DecideDisputeCommandHandler) Handle(ctx context.Context, cmd DecideDisputeCommand) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.DecideDispute(cmd.WinnerID(), cmd.DecisionNotes(), h.arbitrationFee, now)
		})
}
