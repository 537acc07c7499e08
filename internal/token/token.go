package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/doctors-portal-api/internal/domain/auth"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
)

// Manager issues and verifies the signed identity assertions the rest of the
// system consumes. Subject is the email; HS256 only.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *Manager) Sign(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"exp": now.Add(m.ttl).Unix(),
		"iat": now.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

func (m *Manager) Verify(tokenString string) (auth.Identity, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return auth.Identity{}, httperr.ErrBusiness("invalid_token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return auth.Identity{}, httperr.ErrBusiness("invalid_token_claims")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return auth.Identity{}, httperr.ErrBusiness("invalid_token_payload")
	}

	return auth.Identity{Email: email}, nil
}
