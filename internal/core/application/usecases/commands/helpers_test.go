package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/orderlock"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	repo     *MockOrderRepository
	uow      *MockOrderUoW
	factory  *MockOrderUoWFactory
	escrow   *MockEscrowGateway
	notifier *MockNotifierGateway
	executor commands.TransitionExecutor
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		repo:     new(MockOrderRepository),
		uow:      new(MockOrderUoW),
		factory:  new(MockOrderUoWFactory),
		escrow:   new(MockEscrowGateway),
		notifier: new(MockNotifierGateway),
	}

	env.executor = commands.NewTransitionExecutor(
		env.factory,
		orderlock.NewRegistry(),
		fixedClock{now: now},
		env.escrow,
		env.notifier,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return env
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	amount, err := kernel.NewMoney(10_000)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		amount,
		baseTime.Add(7*24*time.Hour),
	)
	require.NoError(t, err)

	return o
}

func newDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()

	o := newPendingOrder(t)
	require.NoError(t, o.DeliverWork(o.ProfessionalID(), "done", nil, baseTime))
	o.DrainEffects()

	return o
}
