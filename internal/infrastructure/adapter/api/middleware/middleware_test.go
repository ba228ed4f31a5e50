package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/cache"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type resolverFunc func(ctx context.Context, token string) (*usecase.Caller, error)

func (f resolverFunc) ResolveCaller(ctx context.Context, token string) (*usecase.Caller, error) {
	return f(ctx, token)
}

var tokens = resolverFunc(func(_ context.Context, token string) (*usecase.Caller, error) {
	switch token {
	case "user":
		return &usecase.Caller{AccountID: "acc-1"}, nil
	case "admin":
		return &usecase.Caller{AccountID: "admin-1", IsAdmin: true}, nil
	}
	return nil, errs.ErrUnauthenticated
})

type recordingObserver struct {
	mu      sync.Mutex
	routes  []string
	status  []int
	limited []string
}

func (o *recordingObserver) ObserveHTTP(_ string, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.routes = append(o.routes, route)
	o.status = append(o.status, status)
}

func (o *recordingObserver) RateLimited(route string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.limited = append(o.limited, route)
}

func serve(r http.Handler, method, path, token string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestAuthorization(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNoopLogger()), Authenticate(tokens))
	r.GET("/public", ok)
	r.GET("/private", RequireAuth(), ok)
	r.GET("/admin", RequireAdmin(), ok)

	testCases := []struct {
		name   string
		path   string
		token  string
		header string
		status int
	}{
		{"Anonymous public", "/public", "", "", http.StatusOK},
		{"Anonymous private", "/private", "", "", http.StatusUnauthorized},
		{"User private", "/private", "user", "", http.StatusOK},
		{"User admin", "/admin", "user", "", http.StatusForbidden},
		{"Admin admin", "/admin", "admin", "", http.StatusOK},
		{"Anonymous admin", "/admin", "", "", http.StatusUnauthorized},
		{"Forged token", "/public", "forged", "", http.StatusUnauthorized},
		{"Basic scheme", "/public", "", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var header map[string]string
			if tc.header != "" {
				header = map[string]string{"Authorization": tc.header}
			}
			w := serve(r, http.MethodGet, tc.path, tc.token, header)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestCallerFrom(t *testing.T) {
	r := gin.New()
	r.Use(Authenticate(tokens))
	var seen usecase.Caller
	var found bool
	r.GET("/", func(c *gin.Context) {
		seen, found = CallerFrom(c)
		c.Status(http.StatusNoContent)
	})

	serve(r, http.MethodGet, "/", "admin", nil)

	require.True(t, found)
	assert.Equal(t, usecase.Caller{AccountID: "admin-1", IsAdmin: true}, seen)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.gemasgo.com"}))
	r.GET("/", ok)

	t.Run("Allowed origin is echoed", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/", "", map[string]string{"Origin": "https://app.gemasgo.com"})
		assert.Equal(t, "https://app.gemasgo.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Other origins get no header", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/", "", map[string]string{"Origin": "https://evil.example"})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		w := serve(r, http.MethodOptions, "/", "", map[string]string{"Origin": "https://app.gemasgo.com"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})
}

func TestRateLimit(t *testing.T) {
	newRouter := func(limiter Limiter, obs *recordingObserver) *gin.Engine {
		r := gin.New()
		r.Use(ErrorHandler(logger.NewNoopLogger()), Authenticate(tokens))
		r.POST("/ad-views", RateLimit(limiter, "ad_views", 2, time.Minute, obs, logger.NewNoopLogger()), ok)
		return r
	}

	t.Run("Over the quota", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		key := "rl:60:ad_views:acc:acc-1"
		mock.ExpectIncr(key).SetVal(3)
		mock.ExpectTTL(key).SetVal(30 * time.Second)
		obs := &recordingObserver{}
		r := newRouter(cache.NewRateLimiter(client, "rl"), obs)

		// Act
		w := serve(r, http.MethodPost, "/ad-views", "user", nil)

		// Assert
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "30", w.Header().Get("Retry-After"))
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"ad_views"}, obs.limited)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Anonymous callers are keyed by address", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		key := "rl:60:ad_views:ip:192.0.2.1"
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, time.Minute).SetVal(true)
		mock.ExpectTTL(key).SetVal(time.Minute)
		r := newRouter(cache.NewRateLimiter(client, "rl"), &recordingObserver{})

		w := serve(r, http.MethodPost, "/ad-views", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis outage fails open", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr("rl:60:ad_views:acc:acc-1").SetErr(errors.New("connection refused"))
		obs := &recordingObserver{}
		r := newRouter(cache.NewRateLimiter(client, "rl"), obs)

		w := serve(r, http.MethodPost, "/ad-views", "user", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, obs.limited)
	})
}

func TestMetrics(t *testing.T) {
	obs := &recordingObserver{}
	r := gin.New()
	r.Use(Metrics(obs), ErrorHandler(logger.NewNoopLogger()))
	r.GET("/games/:id", func(c *gin.Context) {
		_ = c.Error(errs.ErrGameNotFound)
	})

	serve(r, http.MethodGet, "/games/g-1", "", nil)
	serve(r, http.MethodGet, "/nowhere", "", nil)

	assert.Equal(t, []string{"/games/:id", "unmatched"}, obs.routes)
	assert.Equal(t, []int{http.StatusNotFound, http.StatusNotFound}, obs.status)
}

func TestLogger(t *testing.T) {
	zapCore, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewWithCore(zapCore, core.LogLevelDebug)
	r := gin.New()
	r.Use(Logger(log), ErrorHandler(log), Authenticate(tokens))
	r.GET("/accounts/:id", func(c *gin.Context) {
		_ = c.Error(errs.ErrPermissionDenied)
	})
	r.GET("/health/live", ok)

	serve(r, http.MethodGet, "/accounts/acc-2", "user", nil)
	serve(r, http.MethodGet, "/health/live", "", nil)

	entries := logs.FilterMessage("Request processed").All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusForbidden), fields["status"])
	assert.Equal(t, "/accounts/:id", fields["route"])
	assert.Equal(t, "acc-1", fields["accountId"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}
