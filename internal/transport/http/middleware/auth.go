package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/userhive/usersvc/internal/token"
)

const (
	errUnauthorized = "Unauthorized"
	errInvalidToken = "Invalid token"
)

// tokenVerifier is the subset of token.Service the middleware needs.
type tokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// Auth validates a Bearer token and sets "userID" and "userEmail" in the
// gin context. A missing or malformed Authorization header aborts with
// 401; a token that fails verification (bad signature, expired) aborts
// with 403.
func Auth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": errInvalidToken})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("userEmail", claims.Email)
		c.Next()
	}
}
