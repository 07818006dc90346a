package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func createCancellationRequestedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createDeliveredOrder(t)
	require.NoError(t, o.RequestCancellation(o.ClientID(), "no longer needed", nil, testTime))
	o.DrainEffects()
	return o
}

func TestRequestCancellation(t *testing.T) {
	t.Run("should open a request and start the response window", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RequestCancellation(o.ClientID(), "no longer needed", nil, testTime)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancellationPending, o.Status())
		assert.Equal(t, order.CancellationPendingResponse, o.Cancellation().Status())
		assert.True(t, o.Cancellation().RequestedBy().IsEqual(o.ClientID()))
		require.NotNil(t, o.Cancellation().ResponseDeadline())
		assert.Equal(t, testTime.Add(order.CancellationResponseWindow), *o.Cancellation().ResponseDeadline())
		assert.Equal(t, order.StatusDelivered, o.Cancellation().PriorStatus())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventCancellationRequested, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))
	})

	t.Run("should allow the professional to request", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RequestCancellation(o.ProfessionalID(), "cannot finish", nil, testTime)

		require.NoError(t, err)
		assert.True(t, o.Cancellation().RequestedBy().IsEqual(o.ProfessionalID()))
	})

	t.Run("should require a reason", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RequestCancellation(o.ClientID(), "", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject from pending status", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.RequestCancellation(o.ClientID(), "changed my mind", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject while another request is active", func(t *testing.T) {
		o := createDeliveredOrder(t)
		require.NoError(t, o.RequestRevision(o.ClientID(), "needs polish", "", nil, testTime))
		o.DrainEffects()

		err := o.RequestCancellation(o.ClientID(), "no longer needed", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject a second request while one is pending", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)

		err := o.RequestCancellation(o.ProfessionalID(), "me too", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRespondToCancellation(t *testing.T) {
	t.Run("approval should cancel the order and refund the client", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)
		respondedAt := testTime.Add(time.Hour)

		err := o.RespondToCancellation(o.ProfessionalID(), true, respondedAt)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.DeliveryCancelled, o.DeliveryStatus())
		assert.Equal(t, order.CancellationApproved, o.Cancellation().Status())
		require.NotNil(t, o.Cancellation().RespondedAt())

		escrow, notifications := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowRefund, escrow[0].Kind)
		assert.Equal(t, int64(10_000), escrow[0].Amount.Units())
		require.Len(t, notifications, 2)
		assert.Equal(t, order.EventOrderCancelled, notifications[0].Event)
	})

	t.Run("rejection should restore the prior status with a fresh window", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)
		respondedAt := testTime.Add(20 * time.Hour)

		err := o.RespondToCancellation(o.ProfessionalID(), false, respondedAt)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.CancellationRejected, o.Cancellation().Status())
		require.NotNil(t, o.AutoCompleteAt())
		assert.Equal(t, respondedAt.Add(order.ClientResponseWindow), *o.AutoCompleteAt())

		escrow, notifications := o.DrainEffects()
		assert.Empty(t, escrow)
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventCancellationResolved, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ClientID()))
	})

	t.Run("should reject a response from the requester", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)

		err := o.RespondToCancellation(o.ClientID(), true, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject a response without a pending request", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RespondToCancellation(o.ProfessionalID(), true, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestWithdrawCancellation(t *testing.T) {
	t.Run("should restore the prior status", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)
		withdrawnAt := testTime.Add(time.Hour)

		err := o.WithdrawCancellation(o.ClientID(), withdrawnAt)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.CancellationWithdrawn, o.Cancellation().Status())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventCancellationResolved, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))
	})

	t.Run("should reject withdrawal by the counterpart", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)

		err := o.WithdrawCancellation(o.ProfessionalID(), testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject withdrawal without a pending request", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.WithdrawCancellation(o.ClientID(), testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAutoCancel(t *testing.T) {
	t.Run("should approve an unanswered request after the deadline", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)
		deadline := testTime.Add(order.CancellationResponseWindow)

		err := o.AutoCancel(deadline)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.CancellationApproved, o.Cancellation().Status())

		escrow, _ := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowRefund, escrow[0].Kind)
	})

	t.Run("should reject before the deadline", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)

		err := o.AutoCancel(testTime.Add(time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.StatusCancellationPending, o.Status())
	})

	t.Run("should reject after the request was answered", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)
		require.NoError(t, o.RespondToCancellation(o.ProfessionalID(), false, testTime))
		o.DrainEffects()

		err := o.AutoCancel(testTime.Add(48 * time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestCancellationFromInProgress(t *testing.T) {
	// A revision moves the order to InProgress; once the revision concludes a
	// cancellation opened there restores InProgress on rejection.
	o := createDeliveredOrder(t)
	require.NoError(t, o.RequestRevision(o.ClientID(), "needs polish", "", nil, testTime))
	require.NoError(t, o.RespondToRevision(o.ProfessionalID(), true, "", testTime))
	o.DrainEffects()
	require.Equal(t, order.StatusInProgress, o.Status())

	// The active revision blocks a cancellation request until it completes.
	err := o.RequestCancellation(kernel.NewUUID(), "x", nil, testTime)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)

	err = o.RequestCancellation(o.ClientID(), "taking too long", nil, testTime)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
}
