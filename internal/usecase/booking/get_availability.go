package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns every catalog service with its slot list reduced to the
// slots still free on the given date. Pure read: calling it twice with no
// intervening bookings yields identical results.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]models.Service, error) {

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	services, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(services, bookings), nil
}
