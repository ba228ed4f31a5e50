package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/logger"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/config"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/testclock"
)

var fastRetry = RetryConfig{MaxRetries: 2, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

func newTestUnitOfWork(t *testing.T, retry RetryConfig) (*UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	return NewUnitOfWork(db, logger.NewNoopLogger(), retry), mock
}

func TestUnitOfWork_Within(t *testing.T) {
	ctx := context.Background()
	account := entity.NewAccount("acc-1", "maria", "", "hash", "es", time.Now())

	t.Run("Commits when fn succeeds", func(t *testing.T) {
		// Arrange
		uow, mock := newTestUnitOfWork(t, fastRetry)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := uow.Within(ctx, func(txCtx context.Context) error {
			return uow.GetAccountRepository(txCtx).Update(txCtx, account)
		})

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back when fn fails", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, fastRetry)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := uow.Within(ctx, func(context.Context) error {
			return errs.NewValidationError("amount", "must be positive")
		})

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Business errors are never rerun", func(t *testing.T) {
		rejections := []error{
			errs.NewValidationError("amount", "must be positive"),
			errs.NewInsufficientPointsError("acc-1", 180, 100),
			errs.ErrAccountNotFound,
		}
		for _, rejection := range rejections {
			uow, mock := newTestUnitOfWork(t, fastRetry)
			mock.ExpectBegin()
			mock.ExpectRollback()

			attempts := 0
			err := uow.Within(ctx, func(context.Context) error {
				attempts++
				return rejection
			})

			assert.ErrorIs(t, err, rejection)
			assert.Equal(t, 1, attempts, rejection.Error())
			assert.NoError(t, mock.ExpectationsWereMet())
		}
	})

	t.Run("Lost connection is not rerun", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, fastRetry)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts"`).WillReturnError(errors.New("dial tcp 127.0.0.1:5432: connection refused"))
		mock.ExpectRollback()

		attempts := 0
		err := uow.Within(ctx, func(txCtx context.Context) error {
			attempts++
			return uow.GetAccountRepository(txCtx).Update(txCtx, account)
		})

		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Reruns fn after a serialization failure", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, fastRetry)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts"`).WillReturnError(&pgconn.PgError{Code: "40001"})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		attempts := 0
		err := uow.Within(ctx, func(txCtx context.Context) error {
			attempts++
			return uow.GetAccountRepository(txCtx).Update(txCtx, account)
		})

		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Gives up after MaxRetries", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, RetryConfig{MaxRetries: 0})
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40P01"})

		err := uow.Within(ctx, func(context.Context) error { return nil })

		assert.ErrorIs(t, err, errs.ErrConcurrentUpdate)
		assert.Equal(t, errs.CodeConcurrentUpdate, errs.ErrorCode(err))
	})

	t.Run("Nested Within joins the open transaction", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, fastRetry)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := uow.Within(ctx, func(outer context.Context) error {
			return uow.Within(outer, func(inner context.Context) error {
				assert.Same(t, txFromContext(outer), txFromContext(inner))
				return nil
			})
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Panic rolls back and propagates", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, fastRetry)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = uow.Within(ctx, func(context.Context) error { panic("boom") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure is mapped", func(t *testing.T) {
		uow, mock := newTestUnitOfWork(t, RetryConfig{})
		mock.ExpectBegin().WillReturnError(errors.New("dial tcp: connection refused"))

		err := uow.Within(ctx, func(context.Context) error { return nil })

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	uow, _ := newTestUnitOfWork(t, fastRetry)

	assert.ErrorIs(t, uow.Commit(context.Background()), errs.ErrInternalServer)
	assert.ErrorIs(t, uow.Rollback(context.Background()), errs.ErrInternalServer)
}

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	assert.True(t, mapper.IsRetryable(errs.ErrConcurrentUpdate))
	assert.True(t, mapper.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.False(t, mapper.IsRetryable(errs.ErrInsufficientFunds))
	assert.False(t, mapper.IsRetryable(&pgconn.PgError{Code: "23505"}))

	assert.ErrorIs(t, mapper.MapError(context.DeadlineExceeded, "commit"), context.DeadlineExceeded)
	assert.ErrorIs(t, mapper.MapError(errs.ErrAccountNotFound, "commit"), errs.ErrAccountNotFound)
	assert.ErrorIs(t, mapper.MapError(errors.New("weird"), "commit"), errs.ErrInternalServer)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond, JitterFactor: 0.2}

	assert.GreaterOrEqual(t, calculateBackoffWithJitter(0, cfg), 10*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(0, cfg), 12*time.Millisecond)
	assert.LessOrEqual(t, calculateBackoffWithJitter(10, cfg), 60*time.Millisecond)
	assert.GreaterOrEqual(t, calculateBackoffWithJitter(10, cfg), 50*time.Millisecond)
}

func TestDatabaseLogger_Trace(t *testing.T) {
	clock := testclock.New(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	begin := clock.Now()
	query := func() (string, int64) {
		return `SELECT * FROM "accounts" WHERE id = 'acc-1' FOR UPDATE`, 1
	}

	t.Run("Slow queries warn", func(t *testing.T) {
		observed, logs := observer.New(zapcore.DebugLevel)
		dbLogger := NewDatabaseLogger(logger.NewWithCore(observed, core.LogLevelDebug), clock, "info", 100*time.Millisecond)
		clock.Advance(time.Second)

		dbLogger.Trace(context.Background(), begin, query, nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "Slow SQL query", entry.Message)
		assert.Equal(t, "accounts", entry.ContextMap()["table"])
		assert.Equal(t, "SELECT", entry.ContextMap()["type"])
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		observed, logs := observer.New(zapcore.DebugLevel)
		dbLogger := NewDatabaseLogger(logger.NewWithCore(observed, core.LogLevelDebug), clock, "warn", 0)

		dbLogger.Trace(context.Background(), clock.Now(), query, gorm.ErrRecordNotFound)
		dbLogger.Trace(context.Background(), clock.Now(), query, errors.New("syntax error"))

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "SQL error", logs.All()[0].Message)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		observed, logs := observer.New(zapcore.DebugLevel)
		dbLogger := NewDatabaseLogger(logger.NewWithCore(observed, core.LogLevelDebug), clock, "silent", 0)

		dbLogger.Trace(context.Background(), clock.Now(), query, errors.New("syntax error"))

		assert.Equal(t, 0, logs.Len())
	})
}

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("Idle pool logs nothing", func(t *testing.T) {
		sqlDB, _, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()
		sqlDB.SetMaxOpenConns(7)
		observed, logs := observer.New(zapcore.DebugLevel)

		monitor := NewConnectionPoolMonitor(func() (*sql.DB, error) { return sqlDB, nil }, logger.NewWithCore(observed, core.LogLevelDebug))
		require.NoError(t, monitor.Start(time.Hour))
		monitor.Stop()
		monitor.Stop()

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("Warns when the pool is nearly exhausted", func(t *testing.T) {
		sqlDB, _, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()
		sqlDB.SetMaxOpenConns(1)
		conn, err := sqlDB.Conn(context.Background())
		require.NoError(t, err)
		defer conn.Close()
		observed, logs := observer.New(zapcore.DebugLevel)

		monitor := NewConnectionPoolMonitor(func() (*sql.DB, error) { return sqlDB, nil }, logger.NewWithCore(observed, core.LogLevelDebug))
		require.NoError(t, monitor.Start(time.Hour))
		defer monitor.Stop()

		warnings := logs.FilterMessage("Database connection pool nearly exhausted")
		require.Equal(t, 1, warnings.Len())
		assert.EqualValues(t, 1, warnings.All()[0].ContextMap()["inUse"])
	})

	t.Run("Start fails when the pool is unavailable", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(func() (*sql.DB, error) { return nil, errors.New("closed") }, logger.NewNoopLogger())

		assert.Error(t, monitor.Start(time.Hour))
	})
}

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: "5432", Username: "gg", Password: "secret", Database: "gemasgo"}

	assert.Equal(t, "host=db port=5432 user=gg password=secret dbname=gemasgo sslmode=disable TimeZone=UTC", DSN(cfg))
	assert.NotContains(t, RedactedURL(cfg), "secret")
}
