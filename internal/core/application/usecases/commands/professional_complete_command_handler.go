package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// ProfessionalCompleteCommandHandler handles order completion initiated by
// the professional once the client response window has elapsed.
type ProfessionalCompleteCommandHandler struct {
	executor TransitionExecutor
}

// NewProfessionalCompleteCommandHandler creates a handler for professional-initiated completion.
func NewProfessionalCompleteCommandHandler(executor TransitionExecutor) ProfessionalCompleteCommandHandler {
	return ProfessionalCompleteCommandHandler{executor: executor}
}

// Handle completes the order and releases the escrowed amount to the professional.
func (h ProfessionalCompleteCommandHandler) Handle(
	ctx context.Context,
	cmd ProfessionalCompleteCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	return h.executor.execute(ctx, cmd.OrderID(), cmd.Version(),
		func(o *order.Order, now time.Time) error {
			return o.ProfessionalComplete(cmd.ActorID(), now)
		})
}
