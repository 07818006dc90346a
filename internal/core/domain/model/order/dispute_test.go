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

func createOpenDispute(t *testing.T) *order.Order {
	t.Helper()
	o := createDeliveredOrder(t)
	err := o.OpenDispute(o.ClientID(), "two logo concepts", "only one delivered",
		createMoney(t, 6_000), nil, testTime)
	require.NoError(t, err)
	o.DrainEffects()
	return o
}

func createNegotiatingDispute(t *testing.T) *order.Order {
	t.Helper()
	o := createOpenDispute(t)
	counter := createMoney(t, 3_000)
	require.NoError(t, o.RespondToDispute(o.ProfessionalID(), &counter, testTime.Add(time.Hour)))
	o.DrainEffects()
	return o
}

func TestOpenDispute(t *testing.T) {
	t.Run("should freeze funds and start the response window", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.OpenDispute(o.ClientID(), "two logo concepts", "only one delivered",
			createMoney(t, 6_000), nil, testTime)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDisputed, o.Status())
		assert.Equal(t, order.DeliveryDisputed, o.DeliveryStatus())
		d := o.Dispute()
		assert.Equal(t, order.DisputeOpen, d.Status())
		assert.True(t, d.ClaimantID().IsEqual(o.ClientID()))
		assert.True(t, d.RespondentID().IsEqual(o.ProfessionalID()))
		require.NotNil(t, d.ResponseDeadline())
		assert.Equal(t, testTime.Add(order.DisputeResponseWindow), *d.ResponseDeadline())

		escrow, notifications := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowFreeze, escrow[0].Kind)
		assert.True(t, escrow[0].Amount.IsEqual(o.Amount()))
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventDisputeOpened, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))
	})

	t.Run("the professional may open one while work is in progress", func(t *testing.T) {
		o := createPendingOrder(t)
		require.NoError(t, o.DeliverWork(o.ProfessionalID(), "first draft", nil, testTime))
		require.NoError(t, o.RequestRevision(o.ClientID(), "wrong colors", "", nil, testTime))
		o.DrainEffects()

		err := o.OpenDispute(o.ProfessionalID(), "scope as quoted", "client keeps expanding scope",
			createMoney(t, 10_000), nil, testTime)

		require.NoError(t, err)
		d := o.Dispute()
		assert.True(t, d.ClaimantID().IsEqual(o.ProfessionalID()))
		assert.True(t, d.RespondentID().IsEqual(o.ClientID()))
	})

	t.Run("should reject an offer above the order amount", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.OpenDispute(o.ClientID(), "two logo concepts", "",
			createMoney(t, 10_001), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require the requirements statement", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.OpenDispute(o.ClientID(), "", "nothing delivered", createMoney(t, 6_000), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject before any work exists", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.OpenDispute(o.ClientID(), "two logo concepts", "", createMoney(t, 6_000), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject while a cancellation awaits a response", func(t *testing.T) {
		o := createCancellationRequestedOrder(t)

		err := o.OpenDispute(o.ClientID(), "two logo concepts", "", createMoney(t, 6_000), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject a second dispute", func(t *testing.T) {
		o := createOpenDispute(t)

		err := o.OpenDispute(o.ProfessionalID(), "scope as quoted", "", createMoney(t, 1_000), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject an outsider", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.OpenDispute(kernel.NewUUID(), "two logo concepts", "", createMoney(t, 6_000), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestRespondToDispute(t *testing.T) {
	t.Run("should move into negotiation with a counter-offer", func(t *testing.T) {
		o := createOpenDispute(t)
		counter := createMoney(t, 3_000)
		respondedAt := testTime.Add(2 * time.Hour)

		err := o.RespondToDispute(o.ProfessionalID(), &counter, respondedAt)

		require.NoError(t, err)
		d := o.Dispute()
		assert.Equal(t, order.DisputeNegotiation, d.Status())
		require.NotNil(t, d.RespondentOffer())
		assert.True(t, d.RespondentOffer().IsEqual(counter))
		assert.Nil(t, d.ResponseDeadline())
		require.NotNil(t, d.NegotiationDeadline())
		assert.Equal(t, respondedAt.Add(order.NegotiationWindow), *d.NegotiationDeadline())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventDisputeNegotiation, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ClientID()))
	})

	t.Run("the counter-offer is optional", func(t *testing.T) {
		o := createOpenDispute(t)

		err := o.RespondToDispute(o.ProfessionalID(), nil, testTime)

		require.NoError(t, err)
		assert.Nil(t, o.Dispute().RespondentOffer())
	})

	t.Run("should reject a counter-offer above the order amount", func(t *testing.T) {
		o := createOpenDispute(t)
		counter := createMoney(t, 10_001)

		err := o.RespondToDispute(o.ProfessionalID(), &counter, testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject the claimant answering their own dispute", func(t *testing.T) {
		o := createOpenDispute(t)

		err := o.RespondToDispute(o.ClientID(), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject without an open dispute", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RespondToDispute(o.ProfessionalID(), nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRequestArbitration(t *testing.T) {
	t.Run("either party may escalate a negotiation", func(t *testing.T) {
		o := createNegotiatingDispute(t)

		err := o.RequestArbitration(o.ClientID())

		require.NoError(t, err)
		d := o.Dispute()
		assert.Equal(t, order.DisputeAdminArbitration, d.Status())
		assert.True(t, d.ArbitrationRequested())
		assert.True(t, d.ArbitrationRequestedBy().IsEqual(o.ClientID()))
		assert.Nil(t, d.NegotiationDeadline())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventDisputeArbitration, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))
	})

	t.Run("should reject before negotiation starts", func(t *testing.T) {
		o := createOpenDispute(t)

		err := o.RequestArbitration(o.ClientID())

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject an outsider", func(t *testing.T) {
		o := createNegotiatingDispute(t)

		err := o.RequestArbitration(kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestCancelDispute(t *testing.T) {
	t.Run("should restore delivered state with a fresh response window", func(t *testing.T) {
		o := createNegotiatingDispute(t)
		cancelledAt := testTime.Add(6 * time.Hour)

		err := o.CancelDispute(o.ClientID(), cancelledAt)

		require.NoError(t, err)
		assert.False(t, o.Dispute().Exists())
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
		require.NotNil(t, o.AutoCompleteAt())
		assert.Equal(t, cancelledAt.Add(order.ClientResponseWindow), *o.AutoCompleteAt())

		escrow, notifications := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowUnfreeze, escrow[0].Kind)
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventDisputeCancelled, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))
	})

	t.Run("should restore active delivery when disputed before delivery", func(t *testing.T) {
		o := createPendingOrder(t)
		require.NoError(t, o.DeliverWork(o.ProfessionalID(), "first draft", nil, testTime))
		require.NoError(t, o.RequestRevision(o.ClientID(), "wrong colors", "", nil, testTime))
		require.NoError(t, o.OpenDispute(o.ProfessionalID(), "scope as quoted", "",
			createMoney(t, 10_000), nil, testTime))
		require.NoError(t, o.RespondToDispute(o.ClientID(), nil, testTime))
		o.DrainEffects()

		err := o.CancelDispute(o.ProfessionalID(), testTime.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, order.DeliveryActive, o.DeliveryStatus())
	})

	t.Run("may cancel during arbitration", func(t *testing.T) {
		o := createNegotiatingDispute(t)
		require.NoError(t, o.RequestArbitration(o.ProfessionalID()))
		o.DrainEffects()

		err := o.CancelDispute(o.ProfessionalID(), testTime)

		require.NoError(t, err)
		assert.False(t, o.Dispute().Exists())
	})

	t.Run("should reject while still awaiting the first response", func(t *testing.T) {
		o := createOpenDispute(t)

		err := o.CancelDispute(o.ClientID(), testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestDecideDispute(t *testing.T) {
	arbitratedDispute := func(t *testing.T) *order.Order {
		t.Helper()
		o := createNegotiatingDispute(t)
		require.NoError(t, o.RequestArbitration(o.ClientID()))
		o.DrainEffects()
		return o
	}

	t.Run("professional win should complete the order and charge the fee", func(t *testing.T) {
		o := arbitratedDispute(t)
		fee := createMoney(t, 1_500)
		decidedAt := testTime.Add(48 * time.Hour)

		err := o.DecideDispute(o.ProfessionalID(), "delivery met the stated requirements", fee, decidedAt)

		require.NoError(t, err)
		d := o.Dispute()
		assert.Equal(t, order.DisputeClosed, d.Status())
		assert.True(t, d.WinnerID().IsEqual(o.ProfessionalID()))
		assert.True(t, d.LoserID().IsEqual(o.ClientID()))
		assert.False(t, d.AutoClosed())
		assert.Equal(t, "delivery met the stated requirements", d.DecisionNotes())
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.DeliveryCompleted, o.DeliveryStatus())
		require.NotNil(t, o.ClosedAt())
		assert.Equal(t, decidedAt, *o.ClosedAt())

		escrow, notifications := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowSettle, escrow[0].Kind)
		assert.True(t, escrow[0].Amount.IsEqual(o.Amount()))
		assert.True(t, escrow[0].WinnerID.IsEqual(o.ProfessionalID()))
		assert.True(t, escrow[0].LoserID.IsEqual(o.ClientID()))
		assert.True(t, escrow[0].Fee.IsEqual(fee))
		require.Len(t, notifications, 2)
		for _, n := range notifications {
			assert.Equal(t, order.EventDisputeClosed, n.Event)
		}
	})

	t.Run("client win should cancel the order", func(t *testing.T) {
		o := arbitratedDispute(t)

		err := o.DecideDispute(o.ClientID(), "", createMoney(t, 1_500), testTime)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.DeliveryCancelled, o.DeliveryStatus())
		assert.True(t, o.Dispute().WinnerID().IsEqual(o.ClientID()))
	})

	t.Run("the winner must be a party", func(t *testing.T) {
		o := arbitratedDispute(t)

		err := o.DecideDispute(kernel.NewUUID(), "", createMoney(t, 1_500), testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject outside arbitration", func(t *testing.T) {
		o := createNegotiatingDispute(t)

		err := o.DecideDispute(o.ClientID(), "", createMoney(t, 1_500), testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAutoCloseDispute(t *testing.T) {
	t.Run("an unanswered dispute closes in the claimant's favor", func(t *testing.T) {
		o := createOpenDispute(t)
		closedAt := testTime.Add(order.DisputeResponseWindow)

		err := o.AutoCloseDispute(closedAt)

		require.NoError(t, err)
		d := o.Dispute()
		assert.Equal(t, order.DisputeClosed, d.Status())
		assert.True(t, d.WinnerID().IsEqual(o.ClientID()))
		assert.True(t, d.AutoClosed())
		assert.Equal(t, order.StatusCancelled, o.Status())

		escrow, _ := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowSettle, escrow[0].Kind)
		assert.True(t, escrow[0].Fee.IsZero())
	})

	t.Run("should reject before the deadline", func(t *testing.T) {
		o := createOpenDispute(t)

		err := o.AutoCloseDispute(testTime.Add(order.DisputeResponseWindow - time.Minute))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject once negotiation has started", func(t *testing.T) {
		o := createNegotiatingDispute(t)

		err := o.AutoCloseDispute(testTime.Add(72 * time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
