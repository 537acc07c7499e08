package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

func seedBooking(repo *fakeRepo) *models.Booking {
	b := &models.Booking{
		Treatment: "Cleaning",
		Date:      "2024-05-15",
		Patient:   "a@x.com",
		Time:      "09:00",
	}
	_ = repo.InsertBooking(context.Background(), b)
	return b
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the booking paid and logs a payment", func(t *testing.T) {
		repo := &fakeRepo{}
		b := seedBooking(repo)
		uc := NewConfirmPayment(repo, nil, zap.NewNop())

		updated, err := uc.Execute(ctx, ConfirmPaymentInput{
			BookingID:     b.ID.Hex(),
			TransactionID: "tx_123",
			Amount:        2500,
			Currency:      "usd",
		})

		require.NoError(t, err)
		assert.True(t, updated.Paid)
		assert.Equal(t, "tx_123", updated.TransactionID)
		require.Len(t, repo.payments, 1)
		assert.Equal(t, b.ID, repo.payments[0].BookingID)
	})

	t.Run("second call with the same transaction id is a no-op", func(t *testing.T) {
		repo := &fakeRepo{}
		b := seedBooking(repo)
		uc := NewConfirmPayment(repo, nil, zap.NewNop())

		in := ConfirmPaymentInput{BookingID: b.ID.Hex(), TransactionID: "tx_123"}

		first, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		second, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, first.Paid, second.Paid)
		assert.Equal(t, first.TransactionID, second.TransactionID)
		assert.Len(t, repo.payments, 1)
	})

	t.Run("unknown booking is not found", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewConfirmPayment(repo, nil, zap.NewNop())

		_, err := uc.Execute(ctx, ConfirmPaymentInput{
			BookingID:     primitive.NewObjectID().Hex(),
			TransactionID: "tx_123",
		})

		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})

	t.Run("missing transaction id is rejected", func(t *testing.T) {
		repo := &fakeRepo{}
		b := seedBooking(repo)
		uc := NewConfirmPayment(repo, nil, zap.NewNop())

		_, err := uc.Execute(ctx, ConfirmPaymentInput{BookingID: b.ID.Hex()})

		assert.True(t, httperr.IsBusiness(err, "missing_transaction_id"))
	})

	t.Run("payment log failure does not fail the confirmation", func(t *testing.T) {
		repo := &fakeRepo{failInsertPayment: errors.New("payments collection down")}
		b := seedBooking(repo)
		uc := NewConfirmPayment(repo, nil, zap.NewNop())

		updated, err := uc.Execute(ctx, ConfirmPaymentInput{
			BookingID:     b.ID.Hex(),
			TransactionID: "tx_123",
		})

		require.NoError(t, err)
		assert.True(t, updated.Paid)
	})
}
