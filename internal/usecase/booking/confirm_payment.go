package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/doctors-portal-api/internal/audit"
	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmPaymentInput struct {
	BookingID     string
	TransactionID string
	Amount        int64
	Currency      string
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewConfirmPayment(repo domain.Repository, auditor *audit.Dispatcher, log *zap.Logger) *ConfirmPayment {
	return &ConfirmPayment{
		repo:  repo,
		audit: auditor,
		log:   log,
	}
}

// Execute records a completed charge against a booking. Unpaid -> Paid is the
// only transition and it is terminal; repeating the call with the same
// transaction id is a no-op. The booking update is the single source of
// truth. The payment record afterwards is a derived log write whose failure
// is logged, never surfaced, so one request can never leave the two halves
// disagreeing about paid state.
func (uc *ConfirmPayment) Execute(
	ctx context.Context,
	in ConfirmPaymentInput,
) (*models.Booking, error) {

	if in.TransactionID == "" {
		return nil, httperr.ErrBusiness("missing_transaction_id")
	}

	b, err := uc.repo.FindBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.Paid {
		return b, nil
	}

	updated, matched, err := uc.repo.MarkBookingPaid(ctx, in.BookingID, in.TransactionID)
	if err != nil {
		return nil, err
	}
	if !matched {
		// A concurrent confirmation won; re-read and report the settled state.
		settled, err := uc.repo.FindBookingByID(ctx, in.BookingID)
		if err != nil {
			return nil, err
		}
		if settled == nil {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return settled, nil
	}

	payment := &models.Payment{
		BookingID:     updated.ID,
		TransactionID: in.TransactionID,
		Amount:        in.Amount,
		Currency:      in.Currency,
	}
	if err := uc.repo.InsertPayment(ctx, payment); err != nil {
		uc.log.Warn("payment record write failed",
			zap.Error(err),
			zap.String("booking_id", in.BookingID),
			zap.String("transaction_id", in.TransactionID),
		)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    updated.Patient,
		Action:   "payment_confirmed",
		Entity:   "booking",
		EntityID: updated.ID.Hex(),
		Metadata: map[string]any{"transaction_id": in.TransactionID},
	})

	return updated, nil
}
