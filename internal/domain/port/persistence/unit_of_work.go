package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Within runs fn inside one transaction, committing when fn returns nil and
	// rolling back otherwise. Transient contention failures are retried.
	Within(ctx context.Context, fn func(txCtx context.Context) error) error

	// Repository getters bind to the transaction in ctx when there is one,
	// and to the plain connection otherwise.
	GetAccountRepository(ctx context.Context) AccountRepository
	GetAdViewRepository(ctx context.Context) AdViewRepository
	GetGameRepository(ctx context.Context) GameRepository
	GetGameSessionRepository(ctx context.Context) GameSessionRepository
	GetStoreTransactionRepository(ctx context.Context) StoreTransactionRepository
	GetStoreTierRepository(ctx context.Context) StoreTierRepository
	GetPromotionRepository(ctx context.Context) PromotionRepository
	GetNotificationRepository(ctx context.Context) NotificationRepository
}
