package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/model"
)

// AdViewRepository implements persistence.AdViewRepository using GORM
type AdViewRepository struct {
	base
}

var _ persistence.AdViewRepository = (*AdViewRepository)(nil)

// NewAdViewRepository creates a new AdViewRepository
func NewAdViewRepository(db *gorm.DB, logger coreport.Logger) *AdViewRepository {
	return &AdViewRepository{base: newBase(db, logger)}
}

// Create inserts an ad view record
func (r *AdViewRepository) Create(ctx context.Context, record *entity.AdViewRecord) error {
	if err := r.db.WithContext(ctx).Create(model.NewAdView(record)).Error; err != nil {
		return r.handleDatabaseError("create ad view", err, errs.ErrAccountNotFound, map[string]any{"accountId": record.AccountID})
	}
	return nil
}

// ListByAccount returns the account's ad views newest-first
func (r *AdViewRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.AdViewRecord, error) {
	var rows []model.AdView
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list ad views", err, errs.ErrNotFound, map[string]any{"accountId": accountID})
	}

	records := make([]*entity.AdViewRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].ToEntity())
	}
	return records, nil
}

// Stats aggregates every ad view
func (r *AdViewRepository) Stats(ctx context.Context) (*entity.AdViewStats, error) {
	var totals struct {
		Total            int64
		TotalValue       int64
		UserEarnings     int64
		PlatformEarnings int64
	}
	err := r.db.WithContext(ctx).Model(&model.AdView{}).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(ad_value), 0) AS total_value, " +
			"COALESCE(SUM(user_earned), 0) AS user_earnings, " +
			"COALESCE(SUM(platform_earned), 0) AS platform_earnings").
		Scan(&totals).Error
	if err != nil {
		return nil, r.handleDatabaseError("ad view stats", err, errs.ErrNotFound, nil)
	}

	return &entity.AdViewStats{
		Total:            totals.Total,
		TotalValue:       totals.TotalValue,
		UserEarnings:     totals.UserEarnings,
		PlatformEarnings: totals.PlatformEarnings,
	}, nil
}
