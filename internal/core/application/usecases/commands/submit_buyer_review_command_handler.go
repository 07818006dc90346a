package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// SubmitBuyerReviewCommandHandler handles buyer reviews by the professional.
type SubmitBuyerReviewCommandHandler struct {
	executor TransitionExecutor
}

// NewSubmitBuyerReviewCommandHandler creates a handler for buyer reviews.
func NewSubmitBuyerReviewCommandHandler(executor TransitionExecutor) SubmitBuyerReviewCommandHandler {
	return SubmitBuyerReviewCommandHandler{executor: executor}
}

// Handle records the professional's review of the client on a completed order.
func (h SubmitBuyerReviewCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitBuyerReviewCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.SubmitBuyerReview(cmd.ActorID(), cmd.Stars(), cmd.Comment(), now)
		})
}
