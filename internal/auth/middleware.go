package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerScheme = "Bearer "

const contextKeyClaims = "claims"

// ClaimsFromContext returns the claims set by RequireToken, or nil.
func ClaimsFromContext(c *gin.Context) *Claims {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// RequireToken returns a middleware that verifies the Authorization bearer
// token and sets the claims in context. Checks run fail-closed in order:
// header present, scheme usable, then cryptographic verification.
func RequireToken(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "no token provided"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, bearerScheme))
		if !strings.HasPrefix(header, bearerScheme) || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token format"})
			return
		}
		claims, err := tokens.Verify(raw)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token expired"})
			case errors.Is(err, ErrTokenInvalid):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			}
			return
		}
		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}
