package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
)

// SlowQueryThreshold is the duration above which SQL is logged as slow
const SlowQueryThreshold = 200 * time.Millisecond

// Manager owns the database connection
type Manager struct {
	config            config.DatabaseConfig
	logLevel          string
	db                *gorm.DB
	logger            coreport.Logger
	timeProvider      coreport.TimeProvider
	connectionMonitor *ConnectionPoolMonitor
}

// NewManager creates a new database manager. logLevel drives the SQL bridge.
func NewManager(cfg config.DatabaseConfig, logLevel string, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       cfg,
		logLevel:     logLevel,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Connect opens the pool, retrying up to RetryAttempts times
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if m.config.Driver != "" && m.config.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"target": RedactedURL(m.config),
	})

	attempts := max(m.config.RetryAttempts, 1)
	var gormDB *gorm.DB
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-time.After(m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = m.open(ctx)
		if err == nil {
			break
		}
		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	m.db = gormDB
	m.connectionMonitor = NewConnectionPoolMonitor(m.SQLDB, m.logger)
	if err := m.connectionMonitor.Start(30 * time.Second); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"target":       RedactedURL(m.config),
		"maxOpenConns": m.config.MaxOpenConns,
		"maxIdleConns": m.config.MaxIdleConns,
	})
	return m.db, nil
}

func (m *Manager) open(ctx context.Context) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(DSN(m.config)), &gorm.Config{
		Logger:                 NewDatabaseLogger(m.logger, m.timeProvider, m.logLevel, SlowQueryThreshold),
		NowFunc:                m.timeProvider.Now,
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	if err := m.ping(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gormDB, nil
}

func (m *Manager) ping(ctx context.Context, sqlDB *sql.DB) error {
	timeout := m.config.QueryTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying pool
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, fmt.Errorf("database not connected")
	}
	return m.db.DB()
}

// Ping checks the database is reachable, for readiness probes
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.SQLDB()
	if err != nil {
		return err
	}
	return m.ping(ctx, sqlDB)
}

// Close stops pool monitoring and closes the connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// CreateUnitOfWork creates a UnitOfWork on the managed connection
func (m *Manager) CreateUnitOfWork(retry RetryConfig) *UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, retry)
}

// MigrationManager returns a migration manager for the managed connection
func (m *Manager) MigrationManager() *migration.MigrationManager {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider)
}
