package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/cache"
)

// Limiter counts requests per identifier in fixed windows
type Limiter interface {
	Allow(ctx context.Context, identifier string, limit int, window time.Duration) (cache.Decision, error)
}

// RateLimitObserver counts rejected requests
type RateLimitObserver interface {
	RateLimited(route string)
}

// RateLimit caps requests per caller (or client IP when anonymous) for one
// route group. Limiter failures let the request through.
func RateLimit(limiter Limiter, name string, limit int, window time.Duration, observer RateLimitObserver, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		identifier := "ip:" + c.ClientIP()
		if caller, ok := CallerFrom(c); ok {
			identifier = "acc:" + caller.AccountID
		}

		decision, err := limiter.Allow(c.Request.Context(), name+":"+identifier, limit, window)
		if err != nil {
			logger.Warn("Rate limiter unavailable, allowing request", map[string]any{
				"limit": name,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		header := c.Writer.Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		header.Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			header.Set("Retry-After", strconv.Itoa(int(decision.ResetIn.Round(time.Second).Seconds())))
			observer.RateLimited(name)
			logger.Warn("Request rate limited", map[string]any{
				"limit":      name,
				"identifier": identifier,
				"count":      decision.Count,
			})
			_ = c.Error(errs.ErrRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
