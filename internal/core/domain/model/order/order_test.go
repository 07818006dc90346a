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

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Test helper functions.
func createMoney(t *testing.T, units int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(units)
	require.NoError(t, err)
	return m
}

func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		createMoney(t, 10_000),
		testTime.Add(7*24*time.Hour),
	)
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createPendingOrder(t)
	require.NoError(t, o.DeliverWork(o.ProfessionalID(), "work is done", nil, testTime))
	o.DrainEffects()
	return o
}

func TestNewOrder(t *testing.T) {
	validClient := kernel.NewUUID()
	validProfessional := kernel.NewUUID()
	validAmount := createMoney(t, 10_000)
	validDelivery := testTime.Add(7 * 24 * time.Hour)

	t.Run("should create order with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, validClient, validProfessional, validAmount, validDelivery)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.ClientID().IsEqual(validClient))
		assert.True(t, o.ProfessionalID().IsEqual(validProfessional))
		assert.Equal(t, int64(10_000), o.Amount().Units())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.DeliveryPending, o.DeliveryStatus())
		assert.Equal(t, 0, o.Version())
		assert.Nil(t, o.AutoCompleteAt())
		assert.Nil(t, o.ClosedAt())
	})

	t.Run("should return error for invalid id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validClient, validProfessional, validAmount, validDelivery)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error when client and professional are the same", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validClient, validClient, validAmount, validDelivery)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for zero expected delivery", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validClient, validProfessional, validAmount, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeliverWork(t *testing.T) {
	t.Run("should deliver and start the client response window", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.DeliverWork(o.ProfessionalID(), "done", []order.FileRef{
			{URL: "https://files.example/result.zip", Name: "result.zip"},
		}, testTime)

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.DeliveryDelivered, o.DeliveryStatus())
		require.NotNil(t, o.AutoCompleteAt())
		assert.Equal(t, testTime.Add(order.ClientResponseWindow), *o.AutoCompleteAt())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventWorkDelivered, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ClientID()))
	})

	t.Run("should reject delivery by the client", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.DeliverWork(o.ClientID(), "done", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject delivery by a non-party", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.DeliverWork(kernel.NewUUID(), "done", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should require a message or files", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.DeliverWork(o.ProfessionalID(), "", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject file references without url", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.DeliverWork(o.ProfessionalID(), "done",
			[]order.FileRef{{Name: "result.zip"}}, testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject delivery from delivered status", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.DeliverWork(o.ProfessionalID(), "again", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestAcceptDelivery(t *testing.T) {
	t.Run("should complete the order and release escrow", func(t *testing.T) {
		o := createDeliveredOrder(t)
		acceptedAt := testTime.Add(2 * time.Hour)

		err := o.AcceptDelivery(o.ClientID(), acceptedAt)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.DeliveryCompleted, o.DeliveryStatus())
		assert.Nil(t, o.AutoCompleteAt())
		require.NotNil(t, o.ClosedAt())
		assert.Equal(t, acceptedAt, *o.ClosedAt())

		escrow, notifications := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowRelease, escrow[0].Kind)
		assert.Equal(t, int64(10_000), escrow[0].Amount.Units())
		assert.True(t, escrow[0].OrderID.IsEqual(o.ID()))
		require.Len(t, notifications, 2)
		assert.Equal(t, order.EventOrderCompleted, notifications[0].Event)
		assert.Equal(t, order.EventOrderCompleted, notifications[1].Event)
	})

	t.Run("should reject acceptance by the professional", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.AcceptDelivery(o.ProfessionalID(), testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject acceptance before delivery", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.AcceptDelivery(o.ClientID(), testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject any transition after completion", func(t *testing.T) {
		o := createDeliveredOrder(t)
		require.NoError(t, o.AcceptDelivery(o.ClientID(), testTime))

		err := o.RequestCancellation(o.ClientID(), "changed my mind", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestProfessionalComplete(t *testing.T) {
	t.Run("should complete after the window elapsed", func(t *testing.T) {
		o := createDeliveredOrder(t)
		afterWindow := testTime.Add(order.ClientResponseWindow + time.Minute)

		err := o.ProfessionalComplete(o.ProfessionalID(), afterWindow)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())

		escrow, _ := o.DrainEffects()
		require.Len(t, escrow, 1)
		assert.Equal(t, order.EscrowRelease, escrow[0].Kind)
	})

	t.Run("should reject while the window is open", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.ProfessionalComplete(o.ProfessionalID(), testTime.Add(time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject completion by the client", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.ProfessionalComplete(o.ClientID(), testTime.Add(48*time.Hour))

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestAutoComplete(t *testing.T) {
	t.Run("should complete once the window elapsed", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.AutoComplete(testTime.Add(order.ClientResponseWindow))

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("should reject while the window is open", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.AutoComplete(testTime.Add(23 * time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should not fire while a revision is active", func(t *testing.T) {
		o := createDeliveredOrder(t)
		require.NoError(t, o.RequestRevision(o.ClientID(), "needs polish", "", nil, testTime))
		o.DrainEffects()

		err := o.AutoComplete(testTime.Add(48 * time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.StatusInProgress, o.Status())
	})
}

func TestRateOrder(t *testing.T) {
	completedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := createDeliveredOrder(t)
		require.NoError(t, o.AcceptDelivery(o.ClientID(), testTime))
		o.DrainEffects()
		return o
	}

	t.Run("should record the client rating once", func(t *testing.T) {
		o := completedOrder(t)

		err := o.RateOrder(o.ClientID(), 5, "great work", testTime)

		require.NoError(t, err)
		require.NotNil(t, o.Rating())
		assert.Equal(t, 5, o.Rating().Stars())
		assert.Equal(t, "great work", o.Rating().Comment())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventOrderRated, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))

		err = o.RateOrder(o.ClientID(), 4, "second thoughts", testTime)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject stars out of range", func(t *testing.T) {
		o := completedOrder(t)

		err := o.RateOrder(o.ClientID(), 6, "", testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject rating by the professional", func(t *testing.T) {
		o := completedOrder(t)

		err := o.RateOrder(o.ProfessionalID(), 5, "", testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject rating before completion", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RateOrder(o.ClientID(), 5, "", testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should record the buyer review independently", func(t *testing.T) {
		o := completedOrder(t)
		require.NoError(t, o.RateOrder(o.ClientID(), 5, "", testTime))

		err := o.SubmitBuyerReview(o.ProfessionalID(), 4, "clear brief", testTime)

		require.NoError(t, err)
		require.NotNil(t, o.BuyerReview())
		assert.Equal(t, 4, o.BuyerReview().Stars())

		err = o.SubmitBuyerReview(o.ProfessionalID(), 3, "", testTime)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject buyer review by the client", func(t *testing.T) {
		o := completedOrder(t)

		err := o.SubmitBuyerReview(o.ClientID(), 4, "", testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestAddAdditionalInfo(t *testing.T) {
	t.Run("should attach a note while work is pending", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.AddAdditionalInfo(o.ClientID(), "brand guidelines attached", []order.FileRef{
			{URL: "https://files.example/brand.pdf", Name: "brand.pdf"},
		}, testTime)

		require.NoError(t, err)
		require.Len(t, o.AdditionalNotes(), 1)
		assert.Equal(t, "brand guidelines attached", o.AdditionalNotes()[0].Text)

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventInfoAdded, notifications[0].Event)
	})

	t.Run("should reject notes by the professional", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.AddAdditionalInfo(o.ProfessionalID(), "note", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject notes after delivery", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.AddAdditionalInfo(o.ClientID(), "too late", nil, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestApplyDueDeadlines(t *testing.T) {
	t.Run("should auto-complete an expired delivery window", func(t *testing.T) {
		o := createDeliveredOrder(t)
		deadline := testTime.Add(order.ClientResponseWindow)

		assert.False(t, o.HasDueDeadline(testTime.Add(time.Hour)))
		assert.True(t, o.HasDueDeadline(deadline))

		applied := o.ApplyDueDeadlines(deadline)

		assert.True(t, applied)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("should auto-approve an expired cancellation request", func(t *testing.T) {
		o := createDeliveredOrder(t)
		require.NoError(t, o.RequestCancellation(o.ClientID(), "no longer needed", nil, testTime))
		o.DrainEffects()
		deadline := testTime.Add(order.CancellationResponseWindow)

		assert.True(t, o.HasDueDeadline(deadline))
		applied := o.ApplyDueDeadlines(deadline)

		assert.True(t, applied)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.CancellationApproved, o.Cancellation().Status())
	})

	t.Run("should be a no-op when nothing is due", func(t *testing.T) {
		o := createDeliveredOrder(t)

		applied := o.ApplyDueDeadlines(testTime.Add(time.Minute))

		assert.False(t, applied)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted aggregate", func(t *testing.T) {
		id, clientID, professionalID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		deadline := testTime.Add(order.ClientResponseWindow)

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               id,
			ClientID:         clientID,
			ProfessionalID:   professionalID,
			Amount:           createMoney(t, 5_000),
			Status:           order.StatusDelivered,
			DeliveryStatus:   order.DeliveryDelivered,
			ExpectedDelivery: testTime.Add(7 * 24 * time.Hour),
			AutoCompleteAt:   &deadline,
			Version:          3,
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, 3, o.Version())
		require.NotNil(t, o.AutoCompleteAt())

		// Restored aggregates accept transitions as usual.
		require.NoError(t, o.AcceptDelivery(clientID, testTime))
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:               kernel.NewUUID(),
			ClientID:         kernel.NewUUID(),
			ProfessionalID:   kernel.NewUUID(),
			Amount:           createMoney(t, 5_000),
			Status:           order.Status(42),
			DeliveryStatus:   order.DeliveryPending,
			ExpectedDelivery: testTime,
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
