package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
	mockusecase "github.com/gemasgo/gemasgo-ledger/mocks/port/usecase"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	userToken  = "user-token"
	otherToken = "other-token"
	adminToken = "admin-token"
)

type staticResolver map[string]usecase.Caller

func (r staticResolver) ResolveCaller(_ context.Context, token string) (*usecase.Caller, error) {
	caller, ok := r[token]
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	return &caller, nil
}

var callers = staticResolver{
	userToken:  {AccountID: "acc-1"},
	otherToken: {AccountID: "acc-2"},
	adminToken: {AccountID: "admin-1", IsAdmin: true},
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.NewNoopLogger()), middleware.Authenticate(callers))
	register(r)
	return r
}

func doRequest(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func account(t *testing.T, id string, points, lives int64) *entity.Account {
	t.Helper()
	a := entity.NewAccount(id, "user-"+id, "", "hash", "", fixedTime)
	require.NoError(t, a.SetBalances(points, lives))
	return a
}

func TestAccountHandler(t *testing.T) {
	t.Run("Register returns the account without its hash", func(t *testing.T) {
		// Arrange
		accounts := mockusecase.NewMockAccountUseCase(t)
		req := entity.RegistrationRequest{Username: "lucia", Password: "secret1"}
		accounts.EXPECT().Register(mock.Anything, req).Return(account(t, "acc-1", 0, 5), nil)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.POST("/register", h.Register) })

		// Act
		w := doRequest(r, http.MethodPost, "/register", "", req)

		// Assert
		require.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "hash")
		body := decode[dto.AccountResponse](t, w)
		assert.Equal(t, int64(5), body.LivesBalance)
		assert.Equal(t, "es", body.Language)
	})

	t.Run("Validation failure carries field details", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		accounts.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errs.ValidationErrors{{Field: "username", Reason: "must be at least 3"}})
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.POST("/register", h.Register) })

		w := doRequest(r, http.MethodPost, "/register", "", map[string]string{"username": "lu"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode[dto.ErrorResponse](t, w)
		assert.Equal(t, errs.CodeValidation, body.Code)
		assert.Equal(t, "must be at least 3", body.Details["username"])
	})

	t.Run("Duplicate username", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		accounts.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateUsername)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.POST("/register", h.Register) })

		w := doRequest(r, http.MethodPost, "/register", "", entity.RegistrationRequest{Username: "lucia", Password: "secret1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeDuplicateKey, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Login with wrong password", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		accounts.EXPECT().Authenticate(mock.Anything, "lucia", "nope").Return(nil, errs.ErrInvalidCredentials)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.POST("/login", h.Login) })

		w := doRequest(r, http.MethodPost, "/login", "", dto.LoginRequest{Username: "lucia", Password: "nope"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, errs.CodeInvalidCredentials, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Login returns the token", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		accounts.EXPECT().Authenticate(mock.Anything, "lucia", "secret1").Return(&usecase.AuthResult{
			Account:   account(t, "acc-1", 20, 5),
			Token:     "jwt",
			ExpiresAt: fixedTime.Add(time.Hour),
		}, nil)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.POST("/login", h.Login) })

		w := doRequest(r, http.MethodPost, "/login", "", dto.LoginRequest{Username: "lucia", Password: "secret1"})

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[dto.AuthResponse](t, w)
		assert.Equal(t, "jwt", body.Token)
		assert.Equal(t, int64(20), body.Account.PointsBalance)
	})

	t.Run("Me resolves the caller's account", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		accounts.EXPECT().GetAccount(mock.Anything, "acc-1").Return(account(t, "acc-1", 40, 5), nil)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.GET("/me", h.Me) })

		w := doRequest(r, http.MethodGet, "/me", userToken, nil)
		anonymous := doRequest(r, http.MethodGet, "/me", "", nil)
		badToken := doRequest(r, http.MethodGet, "/me", "forged", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "acc-1", decode[dto.AccountResponse](t, w).ID)
		assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
		assert.Equal(t, http.StatusUnauthorized, badToken.Code)
	})

	t.Run("Reading another account needs admin", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		accounts.EXPECT().GetAccount(mock.Anything, "acc-2").Return(account(t, "acc-2", 0, 5), nil).Once()
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.GET("/accounts/:id", h.GetAccount) })

		denied := doRequest(r, http.MethodGet, "/accounts/acc-2", userToken, nil)
		allowed := doRequest(r, http.MethodGet, "/accounts/acc-2", adminToken, nil)

		assert.Equal(t, http.StatusForbidden, denied.Code)
		assert.Equal(t, errs.CodePermissionDenied, decode[dto.ErrorResponse](t, denied).Code)
		assert.Equal(t, http.StatusOK, allowed.Code)
	})

	t.Run("Patch passes the caller to the use case", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		points := int64(900)
		accounts.EXPECT().
			UpdateAccount(mock.Anything, usecase.Caller{AccountID: "acc-1"}, "acc-1", entity.AccountPatch{PointsBalance: &points}).
			Return(nil, errs.ErrPermissionDenied)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.PATCH("/accounts/:id", h.UpdateAccount) })

		w := doRequest(r, http.MethodPatch, "/accounts/acc-1", userToken, map[string]int64{"pointsBalance": 900})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdViewHandler(t *testing.T) {
	record := &entity.AdViewRecord{ID: "ad-1", AccountID: "acc-1", AdValue: 100, UserEarned: 20, PlatformEarned: 80, CreatedAt: fixedTime}

	t.Run("Omitted adValue uses the platform default", func(t *testing.T) {
		// Arrange
		adViews := mockusecase.NewMockAdViewUseCase(t)
		adViews.EXPECT().RecordAdView(mock.Anything, "acc-1", entity.DefaultAdValue).Return(record, nil)
		h := NewAdViewHandler(adViews)
		r := newEngine(func(r *gin.Engine) { r.POST("/ad-views", h.Record) })

		// Act
		w := doRequest(r, http.MethodPost, "/ad-views", userToken, map[string]string{"accountId": "acc-1"})

		// Assert
		require.Equal(t, http.StatusCreated, w.Code)
		body := decode[dto.AdViewResponse](t, w)
		assert.Equal(t, int64(20), body.UserEarned)
		assert.Equal(t, int64(80), body.PlatformEarned)
	})

	t.Run("Explicit zero is kept", func(t *testing.T) {
		adViews := mockusecase.NewMockAdViewUseCase(t)
		adViews.EXPECT().RecordAdView(mock.Anything, "acc-1", int64(0)).Return(record, nil)
		h := NewAdViewHandler(adViews)
		r := newEngine(func(r *gin.Engine) { r.POST("/ad-views", h.Record) })

		w := doRequest(r, http.MethodPost, "/ad-views", userToken, `{"adValue": 0}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Crediting someone else is forbidden", func(t *testing.T) {
		h := NewAdViewHandler(mockusecase.NewMockAdViewUseCase(t))
		r := newEngine(func(r *gin.Engine) { r.POST("/ad-views", h.Record) })

		w := doRequest(r, http.MethodPost, "/ad-views", otherToken, map[string]string{"accountId": "acc-1"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Wrong JSON type names the field", func(t *testing.T) {
		h := NewAdViewHandler(mockusecase.NewMockAdViewUseCase(t))
		r := newEngine(func(r *gin.Engine) { r.POST("/ad-views", h.Record) })

		w := doRequest(r, http.MethodPost, "/ad-views", userToken, `{"adValue": "lots"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[dto.ErrorResponse](t, w).Details, "adValue")
	})

	t.Run("Unknown account", func(t *testing.T) {
		adViews := mockusecase.NewMockAdViewUseCase(t)
		adViews.EXPECT().RecordAdView(mock.Anything, "ghost", int64(50)).Return(nil, errs.ErrAccountNotFound)
		h := NewAdViewHandler(adViews)
		r := newEngine(func(r *gin.Engine) { r.POST("/ad-views", h.Record) })

		w := doRequest(r, http.MethodPost, "/ad-views", adminToken, map[string]any{"accountId": "ghost", "adValue": 50})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.CodeNotFound, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("List encodes an empty history as an array", func(t *testing.T) {
		adViews := mockusecase.NewMockAdViewUseCase(t)
		adViews.EXPECT().ListForAccount(mock.Anything, "acc-1").Return(nil, nil)
		h := NewAdViewHandler(adViews)
		r := newEngine(func(r *gin.Engine) { r.GET("/ad-views/account/:accountId", h.ListForAccount) })

		w := doRequest(r, http.MethodGet, "/ad-views/account/acc-1", userToken, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Stats", func(t *testing.T) {
		adViews := mockusecase.NewMockAdViewUseCase(t)
		adViews.EXPECT().Stats(mock.Anything).Return(&entity.AdViewStats{Total: 2, TotalValue: 200, UserEarnings: 40, PlatformEarnings: 160}, nil)
		h := NewAdViewHandler(adViews)
		r := newEngine(func(r *gin.Engine) { r.GET("/ad-views/stats", h.Stats) })

		w := doRequest(r, http.MethodGet, "/ad-views/stats", adminToken, nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total":2,"totalValue":200,"userEarnings":40,"platformEarnings":160}`, w.Body.String())
	})
}

func TestGameHandler(t *testing.T) {
	t.Run("Listing inactive games needs admin", func(t *testing.T) {
		games := mockusecase.NewMockGameUseCase(t)
		games.EXPECT().ListGames(mock.Anything, true).Return([]*entity.Game{{ID: "g-1", Title: "Trivia"}}, nil).Once()
		h := NewGameHandler(games)
		r := newEngine(func(r *gin.Engine) { r.GET("/games", h.List) })

		anonymous := doRequest(r, http.MethodGet, "/games?all=true", "", nil)
		user := doRequest(r, http.MethodGet, "/games?all=true", userToken, nil)
		admin := doRequest(r, http.MethodGet, "/games?all=true", adminToken, nil)

		assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
		assert.Equal(t, http.StatusForbidden, user.Code)
		require.Equal(t, http.StatusOK, admin.Code)
		assert.Len(t, decode[[]dto.GameResponse](t, admin), 1)
	})

	t.Run("Play without lives", func(t *testing.T) {
		games := mockusecase.NewMockGameUseCase(t)
		games.EXPECT().Play(mock.Anything, "acc-1", "g-1").Return(nil, errs.NewInsufficientLivesError("acc-1", 1, 0))
		h := NewGameHandler(games)
		r := newEngine(func(r *gin.Engine) { r.POST("/game-sessions", h.Play) })

		w := doRequest(r, http.MethodPost, "/game-sessions", userToken, dto.GameSessionRequest{GameID: "g-1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInsufficientFunds, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Play counts the session", func(t *testing.T) {
		games := mockusecase.NewMockGameUseCase(t)
		games.EXPECT().Play(mock.Anything, "acc-1", "g-1").
			Return(&entity.GameSession{ID: "s-1", AccountID: "acc-1", GameID: "g-1", PlaysCount: 3, LastPlayedAt: fixedTime}, nil)
		h := NewGameHandler(games)
		r := newEngine(func(r *gin.Engine) { r.POST("/game-sessions", h.Play) })

		w := doRequest(r, http.MethodPost, "/game-sessions", userToken, dto.GameSessionRequest{AccountID: "acc-1", GameID: "g-1"})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(3), decode[dto.GameSessionResponse](t, w).PlaysCount)
	})

	t.Run("Missing game id", func(t *testing.T) {
		h := NewGameHandler(mockusecase.NewMockGameUseCase(t))
		r := newEngine(func(r *gin.Engine) { r.POST("/game-sessions", h.Play) })

		w := doRequest(r, http.MethodPost, "/game-sessions", userToken, `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[dto.ErrorResponse](t, w).Details, "gameId")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Run("Panics become a 500 body", func(t *testing.T) {
		r := newEngine(func(r *gin.Engine) {
			r.GET("/boom", func(c *gin.Context) { panic("boom") })
		})

		w := doRequest(r, http.MethodGet, "/boom", "", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, errs.CodeInternalServer, decode[dto.ErrorResponse](t, w).Code)
	})

	t.Run("Internal causes are not leaked", func(t *testing.T) {
		r := newEngine(func(r *gin.Engine) {
			r.GET("/db", func(c *gin.Context) {
				fail(c, errors.Join(errs.ErrDatabaseConnection, errors.New("dial tcp 10.0.0.5:5432")))
			})
		})

		w := doRequest(r, http.MethodGet, "/db", "", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.5")
	})

	t.Run("Malformed body", func(t *testing.T) {
		accounts := mockusecase.NewMockAccountUseCase(t)
		h := NewAccountHandler(accounts, logger.NewNoopLogger())
		r := newEngine(func(r *gin.Engine) { r.POST("/login", h.Login) })

		w := doRequest(r, http.MethodPost, "/login", "", `{"username":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[dto.ErrorResponse](t, w).Details, "body")
	})
}
