package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
)

const callerKey = "gemasgo.caller"

// CallerResolver turns a bearer token into the calling account
type CallerResolver interface {
	ResolveCaller(ctx context.Context, token string) (*usecase.Caller, error)
}

// Authenticate resolves the caller when the request carries a bearer token.
// Requests without one pass through anonymously, a bad token is rejected.
func Authenticate(resolver CallerResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			_ = c.Error(errs.ErrUnauthenticated)
			c.Abort()
			return
		}

		caller, err := resolver.ResolveCaller(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CallerFrom(c); !ok {
			_ = c.Error(errs.ErrUnauthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			_ = c.Error(errs.ErrUnauthenticated)
			c.Abort()
			return
		}
		if !caller.IsAdmin {
			_ = c.Error(errs.ErrPermissionDenied)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerFrom returns the caller resolved by Authenticate
func CallerFrom(c *gin.Context) (usecase.Caller, bool) {
	value, ok := c.Get(callerKey)
	if !ok {
		return usecase.Caller{}, false
	}
	caller, ok := value.(*usecase.Caller)
	if !ok || caller == nil {
		return usecase.Caller{}, false
	}
	return *caller, true
}
