package persistence

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// PromotionRepository stores video promotions
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.VideoPromotion) error

	// GetForUpdate retrieves and row-locks a promotion inside UnitOfWork.Within
	//
	// Possible errors:
	// - ErrPromotionNotFound: If the promotion doesn't exist
	GetForUpdate(ctx context.Context, id string) (*entity.VideoPromotion, error)

	// ListByAccount returns the account's promotions newest-first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.VideoPromotion, error)

	// ListByStatus returns promotions in the given status newest-first
	ListByStatus(ctx context.Context, status entity.PromotionStatus) ([]*entity.VideoPromotion, error)

	// UpdateStatus persists status and approvedAt
	UpdateStatus(ctx context.Context, promotion *entity.VideoPromotion) error
}
