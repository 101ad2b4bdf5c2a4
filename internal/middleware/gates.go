package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/loanlift/loanlift-api/internal/auth"
	"github.com/loanlift/loanlift-api/internal/models"
)

// IdentityKey is the gin context key holding the verified caller email.
const IdentityKey = "userEmail"

// RoleSource resolves the stored role for an email. A missing user
// resolves to the zero role, not an error.
type RoleSource interface {
	FindRole(ctx context.Context, email string) (models.Role, models.UserStatus, error)
}

// Denial is a failed gate check.
type Denial struct {
	Status int
	Reason string
}

// Gate is a guard predicate evaluated before a handler runs.
// It returns nil to pass or a Denial to halt the request.
type Gate func(c *gin.Context) *Denial

// Chain evaluates gates in order and aborts on the first denial.
func Chain(gates ...Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, gate := range gates {
			if d := gate(c); d != nil {
				c.AbortWithStatusJSON(d.Status, gin.H{"error": d.Reason})
				return
			}
		}
		c.Next()
	}
}

// Authenticated requires a valid session token and attaches the verified
// email to the context for downstream handlers.
func Authenticated(tokens *auth.TokenService) Gate {
	return func(c *gin.Context) *Denial {
		tokenStr := auth.FromRequest(c)
		if tokenStr == "" {
			return &Denial{http.StatusUnauthorized, "missing token"}
		}
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			return &Denial{http.StatusUnauthorized, "invalid token"}
		}
		c.Set(IdentityKey, claims.Email)
		return nil
	}
}

// MinRole requires the authenticated caller's stored role to be at least
// min. Must be chained after Authenticated.
func MinRole(roles RoleSource, min models.Role) Gate {
	return func(c *gin.Context) *Denial {
		email := Identity(c)
		if email == "" {
			return &Denial{http.StatusUnauthorized, "not authenticated"}
		}
		role, _, err := roles.FindRole(c.Request.Context(), email)
		if err != nil {
			return &Denial{http.StatusInternalServerError, "failed to resolve role"}
		}
		if !role.AtLeast(min) {
			return &Denial{http.StatusForbidden, "forbidden"}
		}
		return nil
	}
}

// Identity returns the verified caller email set by Authenticated, or "".
func Identity(c *gin.Context) string {
	email, _ := c.Get(IdentityKey)
	s, _ := email.(string)
	return s
}
