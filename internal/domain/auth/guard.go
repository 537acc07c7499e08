package auth

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/models"
)

// Identity is the authenticated subject extracted from a verified token.
// It is never persisted, only compared against stored records.
type Identity struct {
	Email string
}

type UserReader interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Guard is the single privilege boundary of the system. Every admin mutation
// and every cross-patient read must pass through exactly one of its policies.
type Guard struct {
	users UserReader
}

func NewGuard(users UserReader) *Guard {
	return &Guard{users: users}
}

// RequireAdmin loads the user record for the identity and rejects unless the
// stored role is admin. An identity with no user record is rejected.
func (g *Guard) RequireAdmin(ctx context.Context, id Identity) error {
	user, err := g.users.FindUserByEmail(ctx, id.Email)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return httperr.ErrBusiness("forbidden")
	}
	return nil
}

// RequireSelfOrAdmin succeeds when the identity matches the target email,
// without consulting the user store: self access never requires a user row
// to exist. Otherwise it falls back to the admin check.
func (g *Guard) RequireSelfOrAdmin(ctx context.Context, id Identity, targetEmail string) error {
	if strings.EqualFold(id.Email, targetEmail) {
		return nil
	}
	return g.RequireAdmin(ctx, id)
}
