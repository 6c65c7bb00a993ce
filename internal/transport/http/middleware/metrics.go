package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/userhive/usersvc/internal/metrics"
)

// Metrics records per-route request counts and latency. The route template
// (e.g. /api/users/:id) is used as the path label so IDs don't explode
// cardinality; unmatched requests are bucketed under "unknown".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		labels := []string{c.Request.Method, path, strconv.Itoa(c.Writer.Status())}

		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
	}
}
