package persistence

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// StoreTransactionRepository stores purchase records
type StoreTransactionRepository interface {
	Create(ctx context.Context, txn *entity.StoreTransaction) error

	// GetByID retrieves a transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	GetByID(ctx context.Context, id string) (*entity.StoreTransaction, error)

	// GetForUpdate retrieves and row-locks a transaction inside UnitOfWork.Within
	GetForUpdate(ctx context.Context, id string) (*entity.StoreTransaction, error)

	// ListByAccount returns the account's transactions newest-first
	ListByAccount(ctx context.Context, accountID string) ([]*entity.StoreTransaction, error)

	// ListByStatus returns transactions in the given status newest-first
	ListByStatus(ctx context.Context, status entity.TransactionStatus) ([]*entity.StoreTransaction, error)

	// UpdateStatus persists the status of txn
	UpdateStatus(ctx context.Context, txn *entity.StoreTransaction) error
}

// StoreTierRepository stores the purchasable catalog
type StoreTierRepository interface {
	// List returns active tiers ordered by category and tier. A nil category lists all categories.
	List(ctx context.Context, category *entity.TransactionType) ([]*entity.StoreTier, error)

	// GetByID retrieves a tier
	//
	// Possible errors:
	// - ErrTierNotFound: If the tier doesn't exist
	GetByID(ctx context.Context, id string) (*entity.StoreTier, error)

	Create(ctx context.Context, tier *entity.StoreTier) error
	Update(ctx context.Context, tier *entity.StoreTier) error
}
