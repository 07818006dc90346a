package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestDeliverWorkCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(baseTime)
	o := newPendingOrder(t)

	cmd, err := commands.NewDeliverWorkCommand(o.ID(), o.ProfessionalID(), o.Version(), "first draft", nil)
	require.NoError(t, err)

	mock.InOrder(
		env.factory.On("Create").Return(env.uow).Once(),
		env.uow.On("Begin", ctx).Return(nil).Once(),
		env.uow.On("OrderRepository").Return(env.repo).Once(),
		env.repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		env.repo.On("Update", mock.Anything, o).Return(nil).Once(),
		env.uow.On("Commit", ctx).Return(nil).Once(),
		env.uow.On("Rollback", ctx).Return(nil).Once(),
	)
	env.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n order.Notification) bool {
		return n.Event == order.EventWorkDelivered && n.RecipientID.IsEqual(o.ClientID())
	})).Return(nil).Once()

	h := commands.NewDeliverWorkCommandHandler(env.executor)
	snapshot, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "delivered", snapshot.Status)
	require.NotNil(t, snapshot.AutoCompleteAt)
	assert.Equal(t, baseTime.Add(order.ClientResponseWindow), *snapshot.AutoCompleteAt)

	env.repo.AssertExpectations(t)
	env.uow.AssertExpectations(t)
	env.notifier.AssertExpectations(t)
	env.escrow.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliverWorkCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(baseTime)
	o := newPendingOrder(t)

	staleVersion := o.Version() + 3
	cmd, err := commands.NewDeliverWorkCommand(o.ID(), o.ProfessionalID(), staleVersion, "first draft", nil)
	require.NoError(t, err)

	mock.InOrder(
		env.factory.On("Create").Return(env.uow).Once(),
		env.uow.On("Begin", ctx).Return(nil).Once(),
		env.uow.On("OrderRepository").Return(env.repo).Once(),
		env.repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		env.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeliverWorkCommandHandler(env.executor)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrVersionConflict)
	env.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeliverWorkCommandHandler_Handle_ClientCannotDeliver(t *testing.T) {
	ctx := t.Context()
	env := newTestEnv(baseTime)
	o := newPendingOrder(t)

	cmd, err := commands.NewDeliverWorkCommand(o.ID(), o.ClientID(), o.Version(), "first draft", nil)
	require.NoError(t, err)

	mock.InOrder(
		env.factory.On("Create").Return(env.uow).Once(),
		env.uow.On("Begin", ctx).Return(nil).Once(),
		env.uow.On("OrderRepository").Return(env.repo).Once(),
		env.repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		env.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeliverWorkCommandHandler(env.executor)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	env.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	env.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNewDeliverWorkCommand_RequiresContent(t *testing.T) {
	_, err := commands.NewDeliverWorkCommand(kernel.NewUUID(), kernel.NewUUID(), 0, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeliveryContentIsRequired)
}

func TestNewDeliverWorkCommand_RejectsNegativeVersion(t *testing.T) {
	_, err := commands.NewDeliverWorkCommand(kernel.NewUUID(), kernel.NewUUID(), -1, "draft", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVersionIsNegative)
}
