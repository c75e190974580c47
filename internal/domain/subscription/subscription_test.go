package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(end *time.Time) *Subscription {
	return NewPendingSubscription(7, 3, 9.99, time.Now().UTC(), end, "pi_1")
}

func TestSubscription_Complete(t *testing.T) {
	sub := newPending(nil)

	changed, err := sub.Complete("pi_paid")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PaymentStatusCompleted, sub.PaymentStatus())
	assert.Equal(t, "pi_paid", sub.StripePaymentID())

	changed, err = sub.Complete("pi_other")
	require.NoError(t, err)
	assert.False(t, changed, "second completion is a no-op")
	assert.Equal(t, "pi_paid", sub.StripePaymentID())
}

func TestSubscription_Fail(t *testing.T) {
	sub := newPending(nil)

	changed, err := sub.Fail()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, PaymentStatusFailed, sub.PaymentStatus())

	_, err = sub.Complete("pi")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestSubscription_FailAfterComplete(t *testing.T) {
	sub := newPending(nil)
	_, err := sub.Complete("pi")
	require.NoError(t, err)

	_, err = sub.Fail()
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, PaymentStatusCompleted, sub.PaymentStatus())
}

func TestSubscription_RestartPending(t *testing.T) {
	previous := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	fresh := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("keeps previous end date for recurring plans", func(t *testing.T) {
		sub := newPending(&previous)
		sub.RestartPending(4, 19.99, time.Now().UTC(), &fresh, false, "pi_2")

		require.NotNil(t, sub.EndDate())
		assert.Equal(t, previous, *sub.EndDate())
		assert.Equal(t, uint(4), sub.PlanID())
		assert.Equal(t, "pi_2", sub.StripePaymentID())
	})

	t.Run("fills missing end date", func(t *testing.T) {
		sub := newPending(nil)
		sub.RestartPending(4, 19.99, time.Now().UTC(), &fresh, false, "pi_2")

		require.NotNil(t, sub.EndDate())
		assert.Equal(t, fresh, *sub.EndDate())
	})

	t.Run("lifetime clears end date", func(t *testing.T) {
		sub := newPending(&previous)
		sub.RestartPending(5, 299, time.Now().UTC(), nil, true, "pi_3")

		assert.Nil(t, sub.EndDate())
		assert.True(t, sub.IsPending())
	})
}

func TestSubscription_Replace(t *testing.T) {
	end := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("failed row restarts as pending", func(t *testing.T) {
		sub := newPending(nil)
		_, err := sub.Fail()
		require.NoError(t, err)

		require.NoError(t, sub.Replace(9, 5, time.Now().UTC(), &end, "pi_new"))

		assert.True(t, sub.IsPending())
		assert.Equal(t, uint(9), sub.PlanID())
		assert.Equal(t, &end, sub.EndDate())
	})

	t.Run("completed row is kept", func(t *testing.T) {
		sub := newPending(nil)
		_, err := sub.Complete("pi")
		require.NoError(t, err)

		err = sub.Replace(9, 5, time.Now().UTC(), &end, "pi_new")

		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.True(t, sub.IsCompleted())
		assert.Equal(t, "pi", sub.StripePaymentID())
	})
}

func TestSubscription_ApplyAdminUpdate(t *testing.T) {
	tests := []struct {
		name       string
		update     SubscriptionUpdate
		wantErr    error
		wantStatus PaymentStatus
	}{
		{name: "complete", update: SubscriptionUpdate{PaymentStatus: ptr(PaymentStatusCompleted)}, wantStatus: PaymentStatusCompleted},
		{name: "fail", update: SubscriptionUpdate{PaymentStatus: ptr(PaymentStatusFailed)}, wantStatus: PaymentStatusFailed},
		{name: "unknown status", update: SubscriptionUpdate{PaymentStatus: ptr(PaymentStatus("REFUNDED"))}, wantErr: ErrInvalidPaymentStatus, wantStatus: PaymentStatusPending},
		{name: "amount only", update: SubscriptionUpdate{Amount: ptr(1.5)}, wantStatus: PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := newPending(nil)
			err := sub.ApplyAdminUpdate(tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, sub.PaymentStatus())
		})
	}
}

func TestSubscription_ApplyAdminUpdate_BackToPendingRejected(t *testing.T) {
	sub := newPending(nil)
	_, err := sub.Complete("pi")
	require.NoError(t, err)

	err = sub.ApplyAdminUpdate(SubscriptionUpdate{PaymentStatus: ptr(PaymentStatusPending)})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}
