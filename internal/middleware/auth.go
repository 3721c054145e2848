package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	ContextIdentity = "identity"
	ContextUser     = "user"
)

// IdentityResolver is implemented by the user.ResolveIdentity use case.
type IdentityResolver interface {
	Execute(ctx context.Context, raw string) (*models.User, access.Identity, error)
}

// Auth requires a Bearer session token that resolves to an enabled user and
// stores the caller's access.Identity in the context.
func Auth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Write(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Write(c, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		user, id, err := resolver.Execute(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if be, ok := httperr.As(err); ok {
				httperr.Write(c, http.StatusUnauthorized, be.Message)
				return
			}
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextIdentity, id)
		c.Set(ContextUser, user)

		c.Next()
	}
}

// Identity returns the caller set by Auth.
func Identity(c *gin.Context) (access.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return access.Identity{}, false
	}
	id, ok := v.(access.Identity)
	return id, ok
}
