package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/domain/auth"
	domain "github.com/BruksfildServices01/doctors-portal-api/internal/domain/booking"
	"github.com/BruksfildServices01/doctors-portal-api/internal/dto"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	"github.com/BruksfildServices01/doctors-portal-api/internal/middleware"
	ucBooking "github.com/BruksfildServices01/doctors-portal-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	reserve        *ucBooking.Reserve
	confirmPayment *ucBooking.ConfirmPayment
	repo           domain.Repository
	guard          *auth.Guard
}

func NewBookingHandler(
	reserve *ucBooking.Reserve,
	confirmPayment *ucBooking.ConfirmPayment,
	repo domain.Repository,
	guard *auth.Guard,
) *BookingHandler {
	return &BookingHandler{
		reserve:        reserve,
		confirmPayment: confirmPayment,
		repo:           repo,
		guard:          guard,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Treatment   string `json:"treatment" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Patient     string `json:"patient" binding:"required,email"`
	Time        string `json:"time" binding:"required"`
	PatientName string `json:"patient_name"`
	Phone       string `json:"phone"`
}

type ConfirmPaymentRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	result, err := h.reserve.Execute(c.Request.Context(), ucBooking.ReserveInput{
		Treatment:   req.Treatment,
		Date:        req.Date,
		Patient:     req.Patient,
		Time:        req.Time,
		PatientName: req.PatientName,
		Phone:       req.Phone,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_booking") || httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_booking", "Booking fields are missing or malformed.")
			return
		}
		httperr.Upstream(c, "store_unavailable", "Could not create the booking.")
		return
	}

	// A pre-existing tuple is not an error: the existing booking is returned
	// so the client can reconcile.
	if !result.Created {
		c.JSON(http.StatusOK, gin.H{"success": false, "booking": result.Booking})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": result.Booking})
}

// ======================================================
// LIST BY PATIENT (self-or-admin)
// ======================================================

func (h *BookingHandler) ListByPatient(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	// Bookings store the patient email lowercased; the query parameter must be
	// canonicalized the same way or the lookup misses the patient's own rows.
	patientEmail := strings.ToLower(strings.TrimSpace(c.Query("patientEmail")))
	if patientEmail == "" {
		httperr.BadRequest(c, "missing_patient_email", "patientEmail is required.")
		return
	}

	if err := h.guard.RequireSelfOrAdmin(c.Request.Context(), identity, patientEmail); err != nil {
		if httperr.IsBusiness(err, "forbidden") {
			httperr.Forbidden(c, "forbidden", "You may only read your own bookings.")
			return
		}
		httperr.Upstream(c, "store_unavailable", "Could not verify your permissions.")
		return
	}

	bookings, err := h.repo.ListBookingsByPatient(c.Request.Context(), patientEmail)
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not load bookings.")
		return
	}

	items := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.BookingListDTO{
			ID:        b.ID.Hex(),
			Treatment: b.Treatment,
			Date:      b.Date,
			Time:      b.Time,
			Paid:      b.Paid,
		})
	}

	httpresp.List(c, items)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	b, err := h.repo.FindBookingByID(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_booking_id") {
			httperr.BadRequest(c, "invalid_booking_id", "Booking id is malformed.")
			return
		}
		httperr.Upstream(c, "store_unavailable", "Could not load the booking.")
		return
	}
	if b == nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// CONFIRM PAYMENT
// ======================================================

func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "transactionId is required.")
		return
	}

	updated, err := h.confirmPayment.Execute(c.Request.Context(), ucBooking.ConfirmPaymentInput{
		BookingID:     id,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		Currency:      req.Currency,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_booking_id"):
			httperr.BadRequest(c, "invalid_booking_id", "Booking id is malformed.")
		case httperr.IsBusiness(err, "missing_transaction_id"):
			httperr.BadRequest(c, "missing_transaction_id", "transactionId is required.")
		default:
			httperr.Upstream(c, "store_unavailable", "Could not confirm the payment.")
		}
		return
	}

	httpresp.OK(c, updated)
}
