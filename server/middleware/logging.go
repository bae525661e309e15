package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/storefront/logger"
	"github.com/commercekit/storefront/observability"
)

// RequestLogger returns a Gin middleware that logs every request with method,
// path, status code, and duration, and records the request instruments when
// metrics is non-nil. Health-check paths are silently skipped.
func RequestLogger(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if metrics != nil {
			// The route template keeps instrument cardinality bounded;
			// unmatched requests fall back to the raw path.
			route := c.FullPath()
			if route == "" {
				route = c.Request.URL.Path
			}
			metrics.RecordRequest(c.Request.Context(), c.Request.Method, route, status, latency.Seconds())
		}

		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      status,
			"duration_ms": latency.Milliseconds(),
			"client":      c.ClientIP(),
		}
		if id := c.GetString("request_id"); id != "" {
			fields["request_id"] = id
		}
		if latency > 500*time.Millisecond {
			fields["slow"] = true
		}

		logByStatus(fields, status)
	}
}

func isHealthEndpoint(path string) bool {
	switch path {
	case "/health", "/info", "/metrics":
		return true
	}
	return false
}

// logByStatus logs request fields at the appropriate level based on HTTP status code.
func logByStatus(fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		logger.Error("Request completed", fields)
	case status >= 400:
		logger.Warn("Request completed", fields)
	default:
		logger.Debug("Request completed", fields)
	}
}
