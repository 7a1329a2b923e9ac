package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	dm "travelsurvey/internal/models/domain_models"
	"travelsurvey/pkg/utils"
)

const (
	identityKey = "identity"
	claimsKey   = "claims"
)

// IdentityResolver turns a session token back into the identity it carries.
type IdentityResolver interface {
	Resolve(token string) (dm.IdentityContext, *utils.Claims, error)
}

// IdentityMiddleware decodes the bearer token, if any, into the request's
// identity. A request without a token continues as a guest; a token that is
// malformed, expired or revoked is rejected.
func IdentityMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(identityKey, dm.IdentityContext{})
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.HandleServiceError(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}

		identity, claims, err := resolver.Resolve(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireSession rejects requests that did not present a valid token.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ClaimsFrom(c); !ok {
			utils.HandleServiceError(c, utils.ErrInvalidToken)
			c.Abort()
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity decoded for this request, or the zero
// identity for guests.
func IdentityFrom(c *gin.Context) dm.IdentityContext {
	identity, _ := c.Value(identityKey).(dm.IdentityContext)
	return identity
}

func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	claims, ok := c.Value(claimsKey).(*utils.Claims)
	return claims, ok && claims != nil
}
