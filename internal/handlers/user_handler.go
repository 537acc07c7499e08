package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/audit"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httpresp"
	"github.com/BruksfildServices01/doctors-portal-api/internal/infra/repository"
	"github.com/BruksfildServices01/doctors-portal-api/internal/middleware"
	"github.com/BruksfildServices01/doctors-portal-api/internal/token"
	"github.com/BruksfildServices01/doctors-portal-api/internal/validators"
)

type UserHandler struct {
	users  *repository.UserMongoRepository
	tokens *token.Manager
	audit  *audit.Dispatcher
}

func NewUserHandler(
	users *repository.UserMongoRepository,
	tokens *token.Manager,
	auditor *audit.Dispatcher,
) *UserHandler {
	return &UserHandler{
		users:  users,
		tokens: tokens,
		audit:  auditor,
	}
}

type UpsertUserRequest struct {
	Name string `json:"name"`
}

// Upsert creates or refreshes the user keyed by the path email and issues a
// fresh identity token for it. This is the token issuance path of the system;
// there is no credential step.
func (h *UserHandler) Upsert(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	var req UpsertUserRequest
	_ = c.ShouldBindJSON(&req)

	if !validators.IsEmailDomainValid(c.Request.Context(), email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not appear to be valid.")
		return
	}

	user, err := h.users.UpsertUser(c.Request.Context(), email, req.Name)
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not save the user.")
		return
	}

	signed, err := h.tokens.Sign(email)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue a token.")
		return
	}

	httpresp.OK(c, gin.H{"user": user, "token": signed})
}

// List is admin-only: it is a cross-patient read.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not load users.")
		return
	}

	httpresp.List(c, users)
}

// Elevate grants the admin role to an existing user. Elevation never creates
// a user record.
func (h *UserHandler) Elevate(c *gin.Context) {
	identity := middleware.IdentityFrom(c)
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	matched, err := h.users.ElevateRole(c.Request.Context(), email)
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not update the user.")
		return
	}
	if !matched {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    identity.Email,
		Action:   "role_elevated",
		Entity:   "user",
		EntityID: email,
	})

	httpresp.OK(c, gin.H{"email": email, "role": "admin"})
}

// IsAdmin reports whether the given email holds the admin role. Absent users
// are simply not admins.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	user, err := h.users.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Upstream(c, "store_unavailable", "Could not load the user.")
		return
	}

	httpresp.OK(c, gin.H{"admin": user.IsAdmin()})
}
