package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/metrics"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/payment"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
	mockusecase "github.com/gemasgo/gemasgo-ledger/mocks/port/usecase"
)

func newRouter(t *testing.T) (*gin.Engine, *mockusecase.MockAccountUseCase, *mockusecase.MockStoreUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	accounts := mockusecase.NewMockAccountUseCase(t)
	accounts.EXPECT().ResolveCaller(mock.Anything, "user").Return(&usecase.Caller{AccountID: "acc-1"}, nil).Maybe()
	accounts.EXPECT().ResolveCaller(mock.Anything, "admin").Return(&usecase.Caller{AccountID: "admin-1", IsAdmin: true}, nil).Maybe()
	store := mockusecase.NewMockStoreUseCase(t)
	prom := metrics.NewPrometheus()

	h := Handlers{
		Accounts:      handler.NewAccountHandler(accounts, log),
		AdViews:       handler.NewAdViewHandler(mockusecase.NewMockAdViewUseCase(t)),
		Games:         handler.NewGameHandler(mockusecase.NewMockGameUseCase(t)),
		Store:         handler.NewStoreHandler(store, payment.NewQRRenderer(0)),
		Promotions:    handler.NewPromotionHandler(mockusecase.NewMockPromotionUseCase(t)),
		Notifications: handler.NewNotificationHandler(mockusecase.NewMockNotificationUseCase(t)),
		Admin:         handler.NewAdminHandler(mockusecase.NewMockAdminUseCase(t)),
		Health: handler.NewHealthHandler(map[string]handler.Check{
			"database": func(context.Context) error { return nil },
		}, time.Second, log),
	}
	opts := Options{
		Logger:         log,
		Resolver:       accounts,
		Observer:       prom,
		MetricsHandler: prom.Handler(),
		RateLimit:      config.RateLimitConfig{AdViewsPerMinute: 30, AuthPerMinute: 10},
		AllowedOrigins: []string{"*"},
	}

	router := gin.New()
	SetupMiddlewares(router, opts)
	SetupRoutes(router, h, opts)
	return router, accounts, store
}

func get(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_AccessControl(t *testing.T) {
	router, _, _ := newRouter(t)

	testCases := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"Review queue anonymous", http.MethodGet, "/api/admin/review", "", http.StatusUnauthorized},
		{"Review queue user", http.MethodGet, "/api/admin/review", "user", http.StatusForbidden},
		{"Transaction status by user", http.MethodPatch, "/api/store-transactions/tx-1/status", "user", http.StatusForbidden},
		{"Promotion status by user", http.MethodPatch, "/api/video-promotions/p-1/status", "user", http.StatusForbidden},
		{"Notification by user", http.MethodPost, "/api/notifications", "user", http.StatusForbidden},
		{"Tier creation by user", http.MethodPost, "/api/store-tiers", "user", http.StatusForbidden},
		{"Game creation anonymous", http.MethodPost, "/api/games", "", http.StatusUnauthorized},
		{"Ad view anonymous", http.MethodPost, "/api/ad-views", "", http.StatusUnauthorized},
		{"Purchase anonymous", http.MethodPost, "/api/store-transactions", "", http.StatusUnauthorized},
		{"Pending list by user", http.MethodGet, "/api/store-transactions/pending", "user", http.StatusForbidden},
		{"Balance adjustment by user", http.MethodPost, "/api/admin/accounts/acc-1/balance", "user", http.StatusForbidden},
		{"Liveness", http.MethodGet, "/health/live", "", http.StatusOK},
		{"Readiness", http.MethodGet, "/health/ready", "", http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(router, tc.method, tc.path, tc.token)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestSetupRoutes_StaticSegmentsBeatIDs(t *testing.T) {
	router, _, store := newRouter(t)
	store.EXPECT().ListPending(mock.Anything).Return([]*entity.StoreTransaction{}, nil).Once()

	w := get(router, http.MethodGet, "/api/store-transactions/pending", "admin")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSetupRoutes_Metrics(t *testing.T) {
	router, _, _ := newRouter(t)
	get(router, http.MethodGet, "/health/live", "")

	w := get(router, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `gemasgo_http_requests_total{method="GET",route="/health/live",status="200"} 1`)
}
