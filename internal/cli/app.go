package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/go-redis/redis/v8"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/account"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/admin"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/adview"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/game"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/notification"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/promotion"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/store"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/cache"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/database"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/identity"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/metrics"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/security"
	timeProvider "github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/time"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
)

// app holds everything a command needs, built from configuration
type app struct {
	cfg      *config.Config
	logger   coreport.Logger
	db       *database.Manager
	metrics  *metrics.Prometheus // nil unless observed
	executor *settlement.Executor
	redis    *redis.Client

	accounts      *account.UseCase
	adViews       *adview.UseCase
	games         *game.UseCase
	store         *store.UseCase
	promotions    *promotion.UseCase
	notifications *notification.UseCase
	admin         *admin.UseCase
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	for _, warning := range config.Warnings(cfg) {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (coreport.Logger, error) {
	if flagQuiet {
		return logger.NewNoopLogger(), nil
	}
	zapLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Format:     cfg.Logger.Format,
		Level:      cfg.Logger.Level,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		return nil, err
	}
	return zapLogger, nil
}

// newApp connects to the database and builds the use cases. Close must be
// called once the command is done. With observe unset, measurements are discarded.
func newApp(ctx context.Context, cfg *config.Config, observe bool) (*app, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	tp := timeProvider.NewRealTimeProvider()
	db := database.NewManager(cfg.Database, cfg.Logger.Level, log, tp)
	if _, err := db.Connect(ctx); err != nil {
		_ = log.Flush()
		return nil, err
	}

	a := &app{cfg: cfg, logger: log, db: db}
	var recorder coreport.Metrics = metrics.Noop{}
	if observe {
		a.metrics = metrics.NewPrometheus()
		recorder = a.metrics
		if sqlDB, err := db.SQLDB(); err == nil {
			if err := a.metrics.RegisterDB(sqlDB, "gemasgo"); err != nil {
				log.Warn("Failed to register database pool metrics", map[string]any{"error": err.Error()})
			}
		}
	}

	uow := db.CreateUnitOfWork(retryConfig(cfg.Settlement))

	a.executor = settlement.NewExecutor(uow, log, tp, recorder, settlement.Options{
		QueueSize:   cfg.Settlement.QueueSize,
		LockTimeout: coreport.Duration(cfg.Settlement.LockTimeout()),
		IdleTimeout: coreport.Duration(cfg.Settlement.IdleTimeout()),
	})

	ids := identity.NewUUIDGenerator()
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), tp)

	a.accounts = account.NewUseCase(uow, a.executor, hasher, tokens, ids, tp, log)
	a.adViews = adview.NewUseCase(uow, a.executor, ids, tp, recorder)
	a.games = game.NewUseCase(uow, a.executor, ids, tp, log, cfg.Game.LivesPerPlay)
	a.store = store.NewUseCase(uow, a.executor, ids, tp, log)
	a.promotions = promotion.NewUseCase(uow, a.executor, ids, tp, log)
	a.notifications = notification.NewUseCase(uow, ids, tp, log)
	a.admin = admin.NewUseCase(uow, a.executor, a.store, a.notifications, log)
	return a, nil
}

// connectRedis opens the rate limiter backend. A nil client means rate limiting is off.
func (a *app) connectRedis(ctx context.Context) error {
	client, err := cache.NewRedisClient(ctx, a.cfg.Redis, a.logger)
	if err != nil {
		return err
	}
	a.redis = client
	return nil
}

func (a *app) seeder() *migration.Seeder {
	return migration.NewSeeder(a.store, a.games, a.accounts, a.logger)
}

// Close drains the settlement queues, then releases redis, the logger and the database
func (a *app) Close() {
	a.executor.Shutdown()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close redis client", map[string]any{"error": err.Error()})
		}
	}
	_ = a.logger.Flush()
	if err := a.db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v\n", err)
	}
}

// retryConfig maps settlement.maxRetries onto the unit of work. Zero turns
// contention retries off; a negative value keeps the default.
func retryConfig(s config.SettlementConfig) database.RetryConfig {
	retry := database.DefaultRetryConfig()
	if s.MaxRetries >= 0 {
		retry.MaxRetries = s.MaxRetries
	}
	return retry
}
