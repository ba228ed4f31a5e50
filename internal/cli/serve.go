package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/cache"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/payment"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
)

var (
	flagServeMigrate bool
	flagServeSeed    bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&flagServeMigrate, "migrate", true, "Apply pending migrations before serving")
	serveCmd.Flags().BoolVar(&flagServeSeed, "seed", true, "Seed store tiers, sample games and the bootstrap admin before serving")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	if flagServeMigrate {
		if err := a.db.MigrationManager().MigrateAll(ctx); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}
	if flagServeSeed {
		if err := a.seeder().SeedAll(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			// not fatal: the catalog can be seeded later with "gemasgo seed"
			a.logger.Error("Failed to seed reference data", map[string]any{"error": err.Error()})
		}
	}

	if err := a.connectRedis(ctx); err != nil {
		return err
	}

	router := gin.New()
	opts := routes.Options{
		Logger:         a.logger,
		Resolver:       a.accounts,
		Observer:       a.metrics,
		MetricsHandler: a.metrics.Handler(),
		RateLimit:      cfg.RateLimit,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}
	if a.redis != nil {
		opts.Limiter = cache.NewRateLimiter(a.redis, "rl")
	}
	routes.SetupMiddlewares(router, opts)
	routes.SetupRoutes(router, a.handlers(), opts)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	a.logger.Info("Server exited gracefully", map[string]any{
		"activeQueues": a.executor.ActiveQueues(),
	})
	return nil
}

func (a *app) handlers() routes.Handlers {
	return routes.Handlers{
		Accounts:      handler.NewAccountHandler(a.accounts, a.logger),
		AdViews:       handler.NewAdViewHandler(a.adViews),
		Games:         handler.NewGameHandler(a.games),
		Store:         handler.NewStoreHandler(a.store, payment.NewQRRenderer(payment.DefaultQRSize)),
		Promotions:    handler.NewPromotionHandler(a.promotions),
		Notifications: handler.NewNotificationHandler(a.notifications),
		Admin:         handler.NewAdminHandler(a.admin),
		Health:        handler.NewHealthHandler(a.readinessChecks(), 2*time.Second, a.logger),
	}
}

func (a *app) readinessChecks() map[string]handler.Check {
	checks := map[string]handler.Check{
		"database": a.db.Ping,
	}
	if a.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return a.redis.Ping(ctx).Err()
		}
	}
	return checks
}
