package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

func TestRequestExtension(t *testing.T) {
	t.Run("should open a pending request", func(t *testing.T) {
		o := createPendingOrder(t)
		proposed := o.ExpectedDelivery().Add(72 * time.Hour)

		err := o.RequestExtension(o.ProfessionalID(), proposed, "waiting on client assets", testTime)

		require.NoError(t, err)
		assert.Equal(t, order.ExtensionPendingResponse, o.Extension().Status())
		assert.Equal(t, proposed, o.Extension().NewDeliveryDate())
		require.NotNil(t, o.Extension().RequestedAt())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventExtensionRequested, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ClientID()))
	})

	t.Run("should reject a request by the client", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.RequestExtension(o.ClientID(), o.ExpectedDelivery().Add(time.Hour), "", testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject a date not after the current one", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.RequestExtension(o.ProfessionalID(), o.ExpectedDelivery(), "", testTime)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject after delivery", func(t *testing.T) {
		o := createDeliveredOrder(t)

		err := o.RequestExtension(o.ProfessionalID(), o.ExpectedDelivery().Add(time.Hour), "", testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject while a revision is active", func(t *testing.T) {
		o := createDeliveredOrder(t)
		require.NoError(t, o.RequestRevision(o.ClientID(), "fix", "", nil, testTime))
		o.DrainEffects()

		err := o.RequestExtension(o.ProfessionalID(), o.ExpectedDelivery().Add(time.Hour), "", testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRespondToExtension(t *testing.T) {
	requestedExtension := func(t *testing.T) (*order.Order, time.Time) {
		t.Helper()
		o := createPendingOrder(t)
		proposed := o.ExpectedDelivery().Add(72 * time.Hour)
		require.NoError(t, o.RequestExtension(o.ProfessionalID(), proposed, "assets late", testTime))
		o.DrainEffects()
		return o, proposed
	}

	t.Run("approval should move the expected delivery", func(t *testing.T) {
		o, proposed := requestedExtension(t)

		err := o.RespondToExtension(o.ClientID(), true, testTime.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.ExtensionApproved, o.Extension().Status())
		assert.Equal(t, proposed, o.ExpectedDelivery())
		require.NotNil(t, o.Extension().RespondedAt())

		_, notifications := o.DrainEffects()
		require.Len(t, notifications, 1)
		assert.Equal(t, order.EventExtensionResolved, notifications[0].Event)
		assert.True(t, notifications[0].RecipientID.IsEqual(o.ProfessionalID()))
	})

	t.Run("rejection should keep the original date", func(t *testing.T) {
		o, _ := requestedExtension(t)
		original := o.ExpectedDelivery()

		err := o.RespondToExtension(o.ClientID(), false, testTime.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, order.ExtensionRejected, o.Extension().Status())
		assert.Equal(t, original, o.ExpectedDelivery())
	})

	t.Run("should reject a response by the professional", func(t *testing.T) {
		o, _ := requestedExtension(t)

		err := o.RespondToExtension(o.ProfessionalID(), true, testTime)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should reject without a pending request", func(t *testing.T) {
		o := createPendingOrder(t)

		err := o.RespondToExtension(o.ClientID(), true, testTime)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("a new request may follow a rejected one", func(t *testing.T) {
		o, _ := requestedExtension(t)
		require.NoError(t, o.RespondToExtension(o.ClientID(), false, testTime))
		o.DrainEffects()

		err := o.RequestExtension(o.ProfessionalID(), o.ExpectedDelivery().Add(time.Hour), "second try", testTime)

		require.NoError(t, err)
		assert.Equal(t, order.ExtensionPendingResponse, o.Extension().Status())
	})
}
