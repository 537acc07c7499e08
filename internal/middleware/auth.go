package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctors-portal-api/internal/domain/auth"
	"github.com/BruksfildServices01/doctors-portal-api/internal/httperr"
	"github.com/BruksfildServices01/doctors-portal-api/internal/token"
)

const ContextIdentityEmail = "identityEmail"

// RequireIdentity enforces the identity-required policy. An absent credential
// is 401; a credential that fails verification is 403. The split matches the
// error taxonomy: Unauthorized means no credential, Forbidden means the
// credential is insufficient.
func RequireIdentity(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		identity, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextIdentityEmail, identity.Email)
		c.Next()
	}
}

// RequireAdmin enforces the admin-required policy. Must be registered after
// RequireIdentity.
func RequireAdmin(guard *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)

		if err := guard.RequireAdmin(c.Request.Context(), identity); err != nil {
			if httperr.IsBusiness(err, "forbidden") {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "store_unavailable"})
			return
		}

		c.Next()
	}
}

// IdentityFrom reads the identity set by RequireIdentity. On a context that
// never passed the middleware it returns a zero identity instead of panicking.
func IdentityFrom(c *gin.Context) auth.Identity {
	return auth.Identity{Email: c.GetString(ContextIdentityEmail)}
}
