package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// sweepConcurrency bounds how many orders a single sweep touches at once.
const sweepConcurrency = 8

// errNoDeadlineDue aborts a sweep transition when the candidate's deadline
// was already handled by a concurrent command between the candidate query
// and the lock acquisition.
var errNoDeadlineDue = errors.New("no deadline due")

// SweepDeadlinesCommandHandler applies deadline defaults across all orders
// whose windows have expired. Candidates come from a single repository scan;
// each candidate is then re-checked and transitioned under its own per-order
// lock, so the sweep never races an in-flight party command.
type SweepDeadlinesCommandHandler struct {
	uowFactory OrderUoWFactory
	executor   TransitionExecutor
	clock      ports.Clock
	logger     *slog.Logger
}

// NewSweepDeadlinesCommandHandler creates a handler for deadline sweeps.
func NewSweepDeadlinesCommandHandler(
	uowFactory OrderUoWFactory,
	executor TransitionExecutor,
	clock ports.Clock,
	logger *slog.Logger,
) SweepDeadlinesCommandHandler {
	return SweepDeadlinesCommandHandler{
		uowFactory: uowFactory,
		executor:   executor,
		clock:      clock,
		logger:     logger,
	}
}

// Handle finds orders with expired deadlines and applies the due transitions.
// Per-order failures are logged and do not stop the sweep; the next run
// retries whatever is still due.
func (h SweepDeadlinesCommandHandler) Handle(ctx context.Context, cmd SweepDeadlinesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, err := h.findCandidates(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(sweepConcurrency)

	for _, orderID := range candidates {
		group.Go(func() error {
			h.sweepOrder(groupCtx, orderID)
			return nil
		})
	}

	return group.Wait()
}

func (h SweepDeadlinesCommandHandler) findCandidates(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().FindIDsWithDueDeadlines(ctx, h.clock.Now())
}

func (h SweepDeadlinesCommandHandler) sweepOrder(ctx context.Context, orderID kernel.UUID) {
	_, err := h.executor.execute(ctx, orderID, VersionAny,
		func(o *order.Order, now time.Time) error {
			if !o.ApplyDueDeadlines(now) {
				return errNoDeadlineDue
			}
			return nil
		})

	if err != nil && !errors.Is(err, errNoDeadlineDue) {
		h.logger.ErrorContext(ctx, "deadline sweep failed for order",
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)
	}
}
