package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		fields := map[string]any{
			"method":     method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     statusCode,
			"latencyMs":  latency.Milliseconds(),
			"ip":         c.ClientIP(),
			"requestId":  c.GetHeader("X-Request-ID"),
			"userAgent":  c.Request.UserAgent(),
			"statusText": statusText(statusCode),
		}
		if caller, ok := CallerFrom(c); ok {
			fields["accountId"] = caller.AccountID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		// health probes and scrapes are frequent enough to drown everything else
		if path == "/metrics" || path == "/health/live" || path == "/health/ready" {
			logger.Debug("Request processed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
