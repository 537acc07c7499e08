package booking

import "github.com/BruksfildServices01/doctors-portal-api/internal/models"

// FreeSlots replaces each service's slot list with the slots not yet booked
// for that treatment among the given bookings. Catalog order is preserved.
// Callers pass only the bookings of a single calendar date; booking state is
// never considered across dates.
func FreeSlots(services []models.Service, bookings []models.Booking) []models.Service {

	bookedByTreatment := make(map[string]map[string]struct{}, len(services))
	for _, b := range bookings {
		set, ok := bookedByTreatment[b.Treatment]
		if !ok {
			set = make(map[string]struct{})
			bookedByTreatment[b.Treatment] = set
		}
		set[b.Time] = struct{}{}
	}

	out := make([]models.Service, len(services))
	for i, svc := range services {
		booked := bookedByTreatment[svc.Name]

		free := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				free = append(free, slot)
			}
		}

		svc.Slots = free
		out[i] = svc
	}

	return out
}
