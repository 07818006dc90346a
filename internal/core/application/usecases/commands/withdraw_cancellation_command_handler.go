package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// WithdrawCancellationCommandHandler handles cancellation withdrawals by the requester.
type WithdrawCancellationCommandHandler struct {
	executor TransitionExecutor
}

// NewWithdrawCancellationCommandHandler creates a handler for cancellation withdrawals.
func NewWithdrawCancellationCommandHandler(executor TransitionExecutor) WithdrawCancellationCommandHandler {
	return WithdrawCancellationCommandHandler{executor: executor}
}

// Handle withdraws the pending cancellation request and resumes the order.
func (h WithdrawCancellationCommandHandler) Handle(
	ctx context.Context,
	cmd WithdrawCancellationCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.WithdrawCancellation(cmd.ActorID(), now)
		})
}
