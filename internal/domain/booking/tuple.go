package booking

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
)

const DateLayout = "2006-01-02"

// TupleKey is the natural key of a reservation. No two bookings may share it.
type TupleKey struct {
	Treatment string
	Date      string
	Patient   string
	Time      string
}

// NormalizeTuple canonicalizes a raw request into the uniqueness tuple:
// trimmed fields, lowercased patient email, date validated against DateLayout.
func NormalizeTuple(treatment, date, patient, slot string) (TupleKey, error) {
	key := TupleKey{
		Treatment: strings.TrimSpace(treatment),
		Date:      strings.TrimSpace(date),
		Patient:   strings.ToLower(strings.TrimSpace(patient)),
		Time:      strings.TrimSpace(slot),
	}

	if key.Treatment == "" || key.Patient == "" || key.Time == "" {
		return TupleKey{}, httperr.ErrBusiness("invalid_booking")
	}

	if _, err := time.Parse(DateLayout, key.Date); err != nil {
		return TupleKey{}, httperr.ErrBusiness("invalid_date")
	}

	return key, nil
}
