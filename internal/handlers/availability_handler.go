package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	"github.com/BruksfildServices01/doctors-portal-api/internal/timezone"
	ucBooking "github.com/BruksfildServices01/doctors-portal-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getAvailability *ucBooking.GetAvailability
	clinicTimezone  string
}

func NewAvailabilityHandler(
	getAvailability *ucBooking.GetAvailability,
	clinicTimezone string,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
		clinicTimezone:  clinicTimezone,
	}
}

// Get lists every service with only its still-free slots for the requested
// date. Without a date parameter, "today" in the clinic's timezone is used.
func (h *AvailabilityHandler) Get(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Today(h.clinicTimezone)
	}

	services, err := h.getAvailability.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Upstream(c, "store_unavailable", "Could not compute availability.")
		return
	}

	httpresp.OK(c, services)
}
