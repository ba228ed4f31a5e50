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

// PromotionRepository implements persistence.PromotionRepository using GORM
type PromotionRepository struct {
	base
}

var _ persistence.PromotionRepository = (*PromotionRepository)(nil)

// NewPromotionRepository creates a new PromotionRepository
func NewPromotionRepository(db *gorm.DB, logger coreport.Logger) *PromotionRepository {
	return &PromotionRepository{base: newBase(db, logger)}
}

// Create inserts a promotion
func (r *PromotionRepository) Create(ctx context.Context, promotion *entity.VideoPromotion) error {
	if err := r.db.WithContext(ctx).Create(model.NewVideoPromotion(promotion)).Error; err != nil {
		return r.handleDatabaseError("create promotion", err, errs.ErrPromotionNotFound, map[string]any{"accountId": promotion.AccountID})
	}
	return nil
}

// GetForUpdate reads the promotion with a row lock
func (r *PromotionRepository) GetForUpdate(ctx context.Context, id string) (*entity.VideoPromotion, error) {
	var row model.VideoPromotion
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("lock promotion", err, errs.ErrPromotionNotFound, map[string]any{"promotionId": id})
	}
	return row.ToEntity(), nil
}

func (r *PromotionRepository) list(ctx context.Context, column string, value any) ([]*entity.VideoPromotion, error) {
	var rows []model.VideoPromotion
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list promotions", err, errs.ErrPromotionNotFound, map[string]any{column: value})
	}

	promotions := make([]*entity.VideoPromotion, 0, len(rows))
	for i := range rows {
		promotions = append(promotions, rows[i].ToEntity())
	}
	return promotions, nil
}

// ListByAccount returns the account's promotions newest-first
func (r *PromotionRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.VideoPromotion, error) {
	return r.list(ctx, "account_id", accountID)
}

// ListByStatus returns promotions in a status newest-first
func (r *PromotionRepository) ListByStatus(ctx context.Context, status entity.PromotionStatus) ([]*entity.VideoPromotion, error) {
	return r.list(ctx, "status", string(status))
}

// UpdateStatus persists status and approvedAt together
func (r *PromotionRepository) UpdateStatus(ctx context.Context, promotion *entity.VideoPromotion) error {
	result := r.db.WithContext(ctx).Model(&model.VideoPromotion{}).
		Where("id = ?", promotion.ID).
		Updates(map[string]any{
			"status":      string(promotion.Status),
			"approved_at": promotion.ApprovedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update promotion", result.Error, errs.ErrPromotionNotFound, map[string]any{"promotionId": promotion.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrPromotionNotFound
	}
	return nil
}
