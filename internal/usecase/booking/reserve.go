package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/doctors-portal-api/internal/audit"
	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

// ======================================================
// INPUT / RESULT
// ======================================================

type ReserveInput struct {
	Treatment   string
	Date        string
	Patient     string
	Time        string
	PatientName string
	Phone       string
}

// ReserveResult with Created=false is the conflict outcome, not an error:
// Booking then carries the pre-existing record so the caller can surface
// "already booked" and reconcile.
type ReserveResult struct {
	Created bool
	Booking *models.Booking
}

// ======================================================
// USE CASE
// ======================================================

type Reserve struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReserve(repo domain.Repository, auditor *audit.Dispatcher) *Reserve {
	return &Reserve{
		repo:  repo,
		audit: auditor,
	}
}

// Execute validates and persists a reservation. The requested time is not
// cross-checked against the availability listing; a booking may name a slot
// the catalog never offered, matching the upstream product behaviour.
func (uc *Reserve) Execute(
	ctx context.Context,
	in ReserveInput,
) (*ReserveResult, error) {

	key, err := domain.NormalizeTuple(in.Treatment, in.Date, in.Patient, in.Time)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindBookingByTuple(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &ReserveResult{Created: false, Booking: existing}, nil
	}

	b := &models.Booking{
		Treatment:   key.Treatment,
		Date:        key.Date,
		Patient:     key.Patient,
		Time:        key.Time,
		PatientName: in.PatientName,
		Phone:       in.Phone,
		Paid:        false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.repo.InsertBooking(ctx, b); err != nil {
		// The unique tuple index turns a lost check-then-act race into a
		// conflict: whoever inserted first owns the slot.
		if httperr.IsBusiness(err, "booking_conflict") {
			winner, findErr := uc.repo.FindBookingByTuple(ctx, key)
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				uc.audit.Dispatch(audit.Event{
					Actor:  key.Patient,
					Action: "booking_conflict",
					Entity: "booking",
					Metadata: map[string]any{
						"treatment": key.Treatment,
						"date":      key.Date,
						"time":      key.Time,
					},
				})
				return &ReserveResult{Created: false, Booking: winner}, nil
			}
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    key.Patient,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID.Hex(),
	})

	return &ReserveResult{Created: true, Booking: b}, nil
}
