package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
)

// Observer receives HTTP and rate limit measurements
type Observer interface {
	middleware.HTTPObserver
	middleware.RateLimitObserver
}

// Handlers groups every API handler
type Handlers struct {
	Accounts      *handler.AccountHandler
	AdViews       *handler.AdViewHandler
	Games         *handler.GameHandler
	Store         *handler.StoreHandler
	Promotions    *handler.PromotionHandler
	Notifications *handler.NotificationHandler
	Admin         *handler.AdminHandler
	Health        *handler.HealthHandler
}

// Options carries the cross-cutting collaborators of the router
type Options struct {
	Logger         coreport.Logger
	Resolver       middleware.CallerResolver
	Observer       Observer
	MetricsHandler http.Handler
	// Limiter is nil when redis is disabled
	Limiter        middleware.Limiter
	RateLimit      config.RateLimitConfig
	AllowedOrigins []string
}

// SetupMiddlewares configures global middlewares for the API. The logger and
// metrics wrap the error handler so they see the final status.
func SetupMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.Metrics(opts.Observer))
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.Authenticate(opts.Resolver))
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, opts Options) {
	router.GET("/health/live", h.Health.Live)
	router.GET("/health/ready", h.Health.Ready)
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	authLimit := rateLimit(opts, "auth", opts.RateLimit.AuthPerMinute)
	adViewLimit := rateLimit(opts, "ad_views", opts.RateLimit.AdViewsPerMinute)
	auth := middleware.RequireAuth()
	admin := middleware.RequireAdmin()

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authLimit, h.Accounts.Register)
		authRoutes.POST("/login", authLimit, h.Accounts.Login)
		authRoutes.GET("/me", auth, h.Accounts.Me)
	}

	accountRoutes := api.Group("/accounts", auth)
	{
		accountRoutes.GET("/:id", h.Accounts.GetAccount)
		accountRoutes.PATCH("/:id", h.Accounts.UpdateAccount)
	}

	adViewRoutes := api.Group("/ad-views")
	{
		adViewRoutes.POST("", auth, adViewLimit, h.AdViews.Record)
		adViewRoutes.GET("/account/:accountId", auth, h.AdViews.ListForAccount)
		adViewRoutes.GET("/stats", admin, h.AdViews.Stats)
	}

	gameRoutes := api.Group("/games")
	{
		gameRoutes.GET("", h.Games.List)
		gameRoutes.GET("/:id", h.Games.Get)
		gameRoutes.POST("", admin, h.Games.Create)
		gameRoutes.PATCH("/:id", admin, h.Games.Update)
	}
	api.POST("/game-sessions", auth, h.Games.Play)

	storeRoutes := api.Group("/store-transactions")
	{
		storeRoutes.POST("", auth, h.Store.Purchase)
		storeRoutes.GET("/pending", admin, h.Store.ListPending)
		storeRoutes.GET("/account/:accountId", auth, h.Store.ListForAccount)
		storeRoutes.GET("/:id", auth, h.Store.Get)
		storeRoutes.GET("/:id/payment-qr", auth, h.Store.PaymentQR)
		storeRoutes.PATCH("/:id/status", admin, h.Store.UpdateStatus)
	}

	tierRoutes := api.Group("/store-tiers")
	{
		tierRoutes.GET("", h.Store.ListTiers)
		tierRoutes.GET("/:category", h.Store.ListTiers)
		tierRoutes.POST("", admin, h.Store.CreateTier)
		tierRoutes.PATCH("/:id", admin, h.Store.UpdateTier)
	}

	promotionRoutes := api.Group("/video-promotions")
	{
		promotionRoutes.GET("/quote", h.Promotions.Quote)
		promotionRoutes.GET("", admin, h.Promotions.ListByStatus)
		promotionRoutes.POST("", auth, h.Promotions.Submit)
		promotionRoutes.GET("/account/:accountId", auth, h.Promotions.ListForAccount)
		promotionRoutes.PATCH("/:id/status", admin, h.Promotions.UpdateStatus)
	}

	notificationRoutes := api.Group("/notifications")
	{
		notificationRoutes.POST("", admin, h.Notifications.Send)
		notificationRoutes.GET("/account/:accountId", auth, h.Notifications.ListForAccount)
		notificationRoutes.PATCH("/:id/read", auth, h.Notifications.MarkRead)
	}

	adminRoutes := api.Group("/admin", admin)
	{
		adminRoutes.GET("/review", h.Admin.ReviewQueue)
		adminRoutes.POST("/store-transactions/:id/receipt", h.Admin.IssueReceipt)
		adminRoutes.POST("/accounts/:id/balance", h.Admin.AdjustBalance)
	}
}

func rateLimit(opts Options, name string, perMinute int) gin.HandlerFunc {
	if opts.Limiter == nil || perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(opts.Limiter, name, perMinute, time.Minute, opts.Observer, opts.Logger)
}
