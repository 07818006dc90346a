package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindIDsWithDueDeadlines(ctx context.Context, now time.Time) ([]kernel.UUID, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEscrowGateway struct{ mock.Mock }

func (m *MockEscrowGateway) Hold(ctx context.Context, orderID, clientID kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, orderID, clientID, amount)
	return args.Error(0)
}

func (m *MockEscrowGateway) Release(ctx context.Context, orderID, professionalID kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, orderID, professionalID, amount)
	return args.Error(0)
}

func (m *MockEscrowGateway) Refund(ctx context.Context, orderID, clientID kernel.UUID, amount kernel.Money) error {
	args := m.Called(ctx, orderID, clientID, amount)
	return args.Error(0)
}

func (m *MockEscrowGateway) Freeze(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockEscrowGateway) Unfreeze(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockEscrowGateway) Settle(ctx context.Context, instr order.EscrowInstruction) error {
	args := m.Called(ctx, instr)
	return args.Error(0)
}

func (m *MockEscrowGateway) Balance(ctx context.Context, partyID kernel.UUID) (kernel.Money, error) {
	args := m.Called(ctx, partyID)
	return args.Get(0).(kernel.Money), args.Error(1)
}

type MockNotifierGateway struct{ mock.Mock }

func (m *MockNotifierGateway) Notify(ctx context.Context, notification order.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// fixedClock returns a constant instant, letting tests drive deadline logic
// without sleeping.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
