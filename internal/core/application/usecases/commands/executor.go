package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/orderlock"
)

// VersionAny disables the optimistic version check for system-initiated
// transitions such as deadline sweeps. External commands always carry the
// version the caller last observed.
const VersionAny = -1

// TransitionExecutor runs an order transition under the engine's concurrency
// discipline: acquire the per-order lock, load the aggregate inside a fresh
// transaction, verify the caller's expected version, apply the mutation,
// persist under the optimistic version guard, commit, and only then release
// the lock and dispatch the accumulated escrow and notification effects.
//
// Gateway dispatch happens outside the lock and outside the transaction, so a
// slow escrow provider or broker never extends the serialization window.
// Dispatch failures are logged and do not fail the command: the committed
// transition is the source of truth and the gateways are at-least-once.
type TransitionExecutor struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Registry
	clock      ports.Clock
	escrow     ports.EscrowGateway
	notifier   ports.NotifierGateway
	logger     *slog.Logger
}

// NewTransitionExecutor creates the shared executor used by all transition
// command handlers.
func NewTransitionExecutor(
	uowFactory OrderUoWFactory,
	locks *orderlock.Registry,
	clock ports.Clock,
	escrow ports.EscrowGateway,
	notifier ports.NotifierGateway,
	logger *slog.Logger,
) TransitionExecutor {
	return TransitionExecutor{
		uowFactory: uowFactory,
		locks:      locks,
		clock:      clock,
		escrow:     escrow,
		notifier:   notifier,
		logger:     logger,
	}
}

// execute applies mutate to the order identified by orderID and persists the
// result. expectedVersion is the aggregate version the caller last observed;
// pass VersionAny to skip the check for system-initiated transitions.
func (e TransitionExecutor) execute(
	ctx context.Context,
	orderID kernel.UUID,
	expectedVersion int,
	mutate func(o *order.Order, now time.Time) error,
) (order.Snapshot, error) {
	release, err := e.locks.Acquire(ctx, orderID)
	if err != nil {
		return order.Snapshot{}, err
	}

	aggregate, err := e.executeLocked(ctx, orderID, expectedVersion, mutate)
	if err != nil {
		release()
		return order.Snapshot{}, err
	}

	snapshot := aggregate.Snapshot()
	escrowInstrs, notifications := aggregate.DrainEffects()
	clientID, professionalID := aggregate.ClientID(), aggregate.ProfessionalID()
	release()

	e.dispatch(ctx, clientID, professionalID, escrowInstrs, notifications)
	return snapshot, nil
}

func (e TransitionExecutor) executeLocked(
	ctx context.Context,
	orderID kernel.UUID,
	expectedVersion int,
	mutate func(o *order.Order, now time.Time) error,
) (*order.Order, error) {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if expectedVersion != VersionAny && aggregate.Version() != expectedVersion {
		return nil, errs.NewVersionConflictError("order", expectedVersion, aggregate.Version())
	}

	if err = mutate(aggregate, e.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// dispatch forwards committed side effects to the escrow and notifier
// gateways. Failures are logged, never returned: the state change has already
// been committed and retrying is the gateways' concern.
func (e TransitionExecutor) dispatch(
	ctx context.Context,
	clientID kernel.UUID,
	professionalID kernel.UUID,
	escrowInstrs []order.EscrowInstruction,
	notifications []order.Notification,
) {
	for _, instr := range escrowInstrs {
		var err error
		switch instr.Kind {
		case order.EscrowRelease:
			err = e.escrow.Release(ctx, instr.OrderID, professionalID, instr.Amount)
		case order.EscrowRefund:
			err = e.escrow.Refund(ctx, instr.OrderID, clientID, instr.Amount)
		case order.EscrowFreeze:
			err = e.escrow.Freeze(ctx, instr.OrderID)
		case order.EscrowUnfreeze:
			err = e.escrow.Unfreeze(ctx, instr.OrderID)
		case order.EscrowSettle:
			err = e.escrow.Settle(ctx, instr)
		}

		if err != nil {
			e.logger.ErrorContext(ctx, "escrow instruction failed",
				slog.String("order_id", instr.OrderID.String()),
				slog.Int("kind", int(instr.Kind)),
				slog.Any("error", err),
			)
		}
	}

	for _, notification := range notifications {
		if err := e.notifier.Notify(ctx, notification); err != nil {
			e.logger.WarnContext(ctx, "notification failed",
				slog.String("order_id", notification.OrderID.String()),
				slog.String("event", notification.Event),
				slog.Any("error", err),
			)
		}
	}
}
