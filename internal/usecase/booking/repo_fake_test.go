package booking

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

// fakeRepo is an in-memory stand-in for the document store. Its mutex plays
// the role of the store's atomicity: InsertBooking enforces the unique tuple
// exactly like the compound index does, and MarkBookingPaid flips paid state
// in one step.
type fakeRepo struct {
	mu       sync.Mutex
	services []models.Service
	bookings []*models.Booking
	payments []*models.Payment

	failInsertPayment error
}

func (f *fakeRepo) ListServices(_ context.Context) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeRepo) FindBookingByTuple(_ context.Context, key domain.TupleKey) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findTupleLocked(key), nil
}

func (f *fakeRepo) findTupleLocked(key domain.TupleKey) *models.Booking {
	for _, b := range f.bookings {
		if b.Treatment == key.Treatment && b.Date == key.Date &&
			b.Patient == key.Patient && b.Time == key.Time {
			copied := *b
			return &copied
		}
	}
	return nil
}

func (f *fakeRepo) InsertBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := domain.TupleKey{Treatment: b.Treatment, Date: b.Date, Patient: b.Patient, Time: b.Time}
	if f.findTupleLocked(key) != nil {
		return httperr.ErrBusiness("booking_conflict")
	}

	b.ID = primitive.NewObjectID()
	stored := *b
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeRepo) FindBookingByID(_ context.Context, id string) (*models.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, httperr.ErrBusiness("invalid_booking_id")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID.Hex() == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListBookingsByDate(_ context.Context, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsByPatient(_ context.Context, email string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkBookingPaid(_ context.Context, id string, transactionID string) (*models.Booking, bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, false, httperr.ErrBusiness("invalid_booking_id")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID.Hex() == id && !b.Paid {
			b.Paid = true
			b.TransactionID = transactionID
			copied := *b
			return &copied, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeRepo) InsertPayment(_ context.Context, p *models.Payment) error {
	if f.failInsertPayment != nil {
		return f.failInsertPayment
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = append(f.payments, p)
	return nil
}

// Compile-time check
var _ domain.Repository = (*fakeRepo)(nil)
