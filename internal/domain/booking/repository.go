package booking

import (
	"context"

	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	ListServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Booking (create / conflict) --------
	FindBookingByTuple(
		ctx context.Context,
		key TupleKey,
	) (*models.Booking, error)

	InsertBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	FindBookingByID(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListBookingsByDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListBookingsByPatient(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	// -------- Booking (payment state) --------
	MarkBookingPaid(
		ctx context.Context,
		id string,
		transactionID string,
	) (*models.Booking, bool, error)

	// -------- Payment log --------
	InsertPayment(
		ctx context.Context,
		p *models.Payment,
	) error
}
