package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/userhive/usersvc/internal/requestid"
)

const requestIDHeader = "X-Request-ID"

// RequestID makes sure every request carries a correlation ID. A
// client-supplied X-Request-ID is kept as-is; otherwise one is generated.
// The ID is stored in the request context and echoed in the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = requestid.New()
		}

		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
