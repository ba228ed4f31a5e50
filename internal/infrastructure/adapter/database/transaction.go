package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/repository"
)

type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements persistence.UnitOfWork on top of GORM transactions.
// The open transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
	retry       RetryConfig
	isolation   sql.IsolationLevel
}

var _ persistence.UnitOfWork = (*UnitOfWork)(nil)

// NewUnitOfWork creates a UnitOfWork running SERIALIZABLE transactions
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, retry RetryConfig) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
		retry:       retry,
		isolation:   sql.LevelSerializable,
	}
}

func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey).(*gorm.DB)
	return tx
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction carried by ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return fmt.Errorf("no transaction found in context: %w", errs.ErrInternalServer)
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Warn("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "commit transaction")
	}
	return nil
}

// Rollback rolls back the transaction carried by ctx. Rolling back a
// finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFromContext(ctx)
	if tx == nil {
		return fmt.Errorf("no transaction found in context: %w", errs.ErrInternalServer)
	}

	err := tx.Rollback().Error
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
	return u.errorMapper.MapError(err, "rollback transaction")
}

// Within runs fn in one transaction. A ctx that already carries a transaction
// is reused. Serialization failures and deadlocks rerun fn from scratch.
func (u *UnitOfWork) Within(ctx context.Context, fn func(txCtx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}
	return RetryOnTransientError(ctx, u.retry, func() error {
		return u.runOnce(ctx, fn)
	}, u.errorMapper, u.logger)
}

func (u *UnitOfWork) runOnce(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := u.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback after failure did not complete", map[string]any{
				"error":         err.Error(),
				"rollbackError": rbErr.Error(),
			})
		}
		return err
	}
	return u.Commit(txCtx)
}

func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}

// GetAccountRepository returns an account repository bound to ctx
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.logger)
}

// GetAdViewRepository returns an ad view repository bound to ctx
func (u *UnitOfWork) GetAdViewRepository(ctx context.Context) persistence.AdViewRepository {
	return repository.NewAdViewRepository(u.getDbFromContext(ctx), u.logger)
}

// GetGameRepository returns a game repository bound to ctx
func (u *UnitOfWork) GetGameRepository(ctx context.Context) persistence.GameRepository {
	return repository.NewGameRepository(u.getDbFromContext(ctx), u.logger)
}

// GetGameSessionRepository returns a game session repository bound to ctx
func (u *UnitOfWork) GetGameSessionRepository(ctx context.Context) persistence.GameSessionRepository {
	return repository.NewGameSessionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetStoreTransactionRepository returns a store transaction repository bound to ctx
func (u *UnitOfWork) GetStoreTransactionRepository(ctx context.Context) persistence.StoreTransactionRepository {
	return repository.NewStoreTransactionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetStoreTierRepository returns a store tier repository bound to ctx
func (u *UnitOfWork) GetStoreTierRepository(ctx context.Context) persistence.StoreTierRepository {
	return repository.NewStoreTierRepository(u.getDbFromContext(ctx), u.logger)
}

// GetPromotionRepository returns a promotion repository bound to ctx
func (u *UnitOfWork) GetPromotionRepository(ctx context.Context) persistence.PromotionRepository {
	return repository.NewPromotionRepository(u.getDbFromContext(ctx), u.logger)
}

// GetNotificationRepository returns a notification repository bound to ctx
func (u *UnitOfWork) GetNotificationRepository(ctx context.Context) persistence.NotificationRepository {
	return repository.NewNotificationRepository(u.getDbFromContext(ctx), u.logger)
}
