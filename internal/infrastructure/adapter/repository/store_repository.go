package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/model"
)

// StoreTransactionRepository implements persistence.StoreTransactionRepository using GORM
type StoreTransactionRepository struct {
	base
}

var _ persistence.StoreTransactionRepository = (*StoreTransactionRepository)(nil)

// NewStoreTransactionRepository creates a new StoreTransactionRepository
func NewStoreTransactionRepository(db *gorm.DB, logger coreport.Logger) *StoreTransactionRepository {
	return &StoreTransactionRepository{base: newBase(db, logger)}
}

// Create inserts a store transaction
func (r *StoreTransactionRepository) Create(ctx context.Context, txn *entity.StoreTransaction) error {
	if err := r.db.WithContext(ctx).Create(model.NewStoreTransaction(txn)).Error; err != nil {
		return r.handleDatabaseError("create store transaction", err, errs.ErrTransactionNotFound, map[string]any{
			"accountId": txn.AccountID,
			"type":      txn.Type,
		})
	}

	r.logger.Debug("Store transaction created", map[string]any{
		"transactionId": txn.ID,
		"accountId":     txn.AccountID,
		"status":        txn.Status,
	})
	return nil
}

func (r *StoreTransactionRepository) first(ctx context.Context, query *gorm.DB, id string) (*entity.StoreTransaction, error) {
	var row model.StoreTransaction
	if err := query.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("get store transaction", err, errs.ErrTransactionNotFound, map[string]any{"transactionId": id})
	}
	return row.ToEntity(), nil
}

// GetByID retrieves a transaction by ID
func (r *StoreTransactionRepository) GetByID(ctx context.Context, id string) (*entity.StoreTransaction, error) {
	return r.first(ctx, r.db, id)
}

// GetForUpdate reads the transaction with a row lock
func (r *StoreTransactionRepository) GetForUpdate(ctx context.Context, id string) (*entity.StoreTransaction, error) {
	return r.first(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *StoreTransactionRepository) list(ctx context.Context, column string, value any) ([]*entity.StoreTransaction, error) {
	var rows []model.StoreTransaction
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list store transactions", err, errs.ErrTransactionNotFound, map[string]any{column: value})
	}

	txns := make([]*entity.StoreTransaction, 0, len(rows))
	for i := range rows {
		txns = append(txns, rows[i].ToEntity())
	}
	return txns, nil
}

// ListByAccount returns the account's transactions newest-first
func (r *StoreTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.StoreTransaction, error) {
	return r.list(ctx, "account_id", accountID)
}

// ListByStatus returns transactions in a status newest-first
func (r *StoreTransactionRepository) ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.StoreTransaction, error) {
	return r.list(ctx, "status", string(status))
}

// UpdateStatus persists txn.Status
func (r *StoreTransactionRepository) UpdateStatus(ctx context.Context, txn *entity.StoreTransaction) error {
	result := r.db.WithContext(ctx).Model(&model.StoreTransaction{}).
		Where("id = ?", txn.ID).
		Update("status", string(txn.Status))
	if result.Error != nil {
		return r.handleDatabaseError("update store transaction", result.Error, errs.ErrTransactionNotFound, map[string]any{"transactionId": txn.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// StoreTierRepository implements persistence.StoreTierRepository using GORM
type StoreTierRepository struct {
	base
}

var _ persistence.StoreTierRepository = (*StoreTierRepository)(nil)

// NewStoreTierRepository creates a new StoreTierRepository
func NewStoreTierRepository(db *gorm.DB, logger coreport.Logger) *StoreTierRepository {
	return &StoreTierRepository{base: newBase(db, logger)}
}

// List returns active tiers ordered by category and tier. A nil category
// returns every category.
func (r *StoreTierRepository) List(ctx context.Context, category *entity.TransactionType) ([]*entity.StoreTier, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if category != nil {
		query = query.Where("category = ?", string(*category))
	}

	var rows []model.StoreTier
	if err := query.Order("category ASC").Order("tier ASC").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("list store tiers", err, errs.ErrTierNotFound, nil)
	}

	tiers := make([]*entity.StoreTier, 0, len(rows))
	for i := range rows {
		tiers = append(tiers, rows[i].ToEntity())
	}
	return tiers, nil
}

// GetByID retrieves a tier by ID
func (r *StoreTierRepository) GetByID(ctx context.Context, id string) (*entity.StoreTier, error) {
	var row model.StoreTier
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("get store tier", err, errs.ErrTierNotFound, map[string]any{"tierId": id})
	}
	return row.ToEntity(), nil
}

// Create inserts a tier
func (r *StoreTierRepository) Create(ctx context.Context, tier *entity.StoreTier) error {
	if err := r.db.WithContext(ctx).Create(model.NewStoreTier(tier)).Error; err != nil {
		return r.handleDatabaseError("create store tier", err, errs.ErrTierNotFound, map[string]any{
			"category": tier.Category,
			"tier":     tier.Tier,
		})
	}
	return nil
}

// Update writes the tier's price, amount, label and visibility
func (r *StoreTierRepository) Update(ctx context.Context, tier *entity.StoreTier) error {
	result := r.db.WithContext(ctx).Model(&model.StoreTier{}).
		Where("id = ?", tier.ID).
		Updates(map[string]any{
			"amount":    tier.Amount,
			"cost":      tier.Cost,
			"label":     tier.Label,
			"is_active": tier.IsActive,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update store tier", result.Error, errs.ErrTierNotFound, map[string]any{"tierId": tier.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrTierNotFound
	}
	return nil
}
