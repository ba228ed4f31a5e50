package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	base
}

var _ persistence.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{base: newBase(db, logger)}
}

func (r *AccountRepository) first(ctx context.Context, query *gorm.DB, operation string, fields map[string]any) (*entity.Account, error) {
	var row model.Account
	if err := query.WithContext(ctx).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, errs.ErrAccountNotFound, fields)
	}
	account, err := row.ToEntity()
	if err != nil {
		r.logger.Error("Stored account violates balance invariants", map[string]any{
			"accountId": row.ID,
			"error":     err.Error(),
		})
		return nil, errs.ErrInternalServer
	}
	return account, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.first(ctx, r.db.Where("id = ?", id), "get account", map[string]any{"accountId": id})
}

// GetByUsername retrieves an account by username
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return r.first(ctx, r.db.Where("username = ?", username), "get account by username", map[string]any{"username": username})
}

// GetForUpdate reads the account with SELECT ... FOR UPDATE
func (r *AccountRepository) GetForUpdate(ctx context.Context, id string) (*entity.Account, error) {
	query := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
	return r.first(ctx, query, "lock account", map[string]any{"accountId": id})
}

// Create inserts a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(model.NewAccount(account)).Error; err != nil {
		mapped := r.handleDatabaseError("create account", err, errs.ErrAccountNotFound, map[string]any{"username": account.Username})
		if errors.Is(mapped, errs.ErrDuplicateKey) {
			return errs.ErrDuplicateUsername
		}
		return mapped
	}
	return nil
}

// Update writes profile fields and balances
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"email":          account.Email,
			"language":       account.Language,
			"points_balance": account.Points(),
			"lives_balance":  account.Lives(),
			"is_admin":       account.IsAdmin,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update account", result.Error, errs.ErrAccountNotFound, map[string]any{"accountId": account.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account updated", map[string]any{
		"accountId": account.ID,
		"points":    account.Points(),
		"lives":     account.Lives(),
	})
	return nil
}

// ExistsByUsername reports whether the username is taken
func (r *AccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Account{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("check username", err, errs.ErrAccountNotFound, map[string]any{"username": username})
	}
	return count > 0, nil
}
