package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/audit"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	"github.com/BruksfildServices01/doctors-portal-api/internal/middleware"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

// DoctorStore is the slice of persistence the doctor surface needs.
type DoctorStore interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	InsertDoctor(ctx context.Context, d *models.Doctor) error
	DeleteDoctorByEmail(ctx context.Context, email string) (bool, error)
}

type DoctorHandler struct {
	doctors DoctorStore
	audit   *audit.Dispatcher
}

func NewDoctorHandler(
	doctors DoctorStore,
	auditor *audit.Dispatcher,
) *DoctorHandler {
	return &DoctorHandler{
		doctors: doctors,
		audit:   auditor,
	}
}

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Specialty string `json:"specialty" binding:"required"`
	Image     string `json:"image"`
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not load doctors.")
		return
	}

	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	doctor := &models.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	}

	if err := h.doctors.InsertDoctor(c.Request.Context(), doctor); err != nil {
		if httperr.IsBusiness(err, "doctor_exists") {
			httperr.Conflict(c, "doctor_exists", "A doctor with that email already exists.")
			return
		}
		httperr.Upstream(c, "store_unavailable", "Could not save the doctor.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    identity.Email,
		Action:   "doctor_added",
		Entity:   "doctor",
		EntityID: doctor.Email,
	})

	httpresp.Created(c, doctor)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	deleted, err := h.doctors.DeleteDoctorByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not delete the doctor.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    identity.Email,
		Action:   "doctor_removed",
		Entity:   "doctor",
		EntityID: email,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
