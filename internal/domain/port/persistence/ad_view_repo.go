package persistence

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// AdViewRepository stores the immutable ad view ledger
type AdViewRepository interface {
	Create(ctx context.Context, record *entity.AdViewRecord) error
	// ListByAccount returns the account's records newest-first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.AdViewRecord, error)
	Stats(ctx context.Context) (*entity.AdViewStats, error)
}
