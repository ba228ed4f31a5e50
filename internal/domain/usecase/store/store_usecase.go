package store

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
)

// UseCase implements the Store-Purchase Service and the tier catalog
type UseCase struct {
	uow          persistence.UnitOfWork
	settler      settlement.Settler
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.StoreUseCase = (*UseCase)(nil)

// NewUseCase creates the store use case
func NewUseCase(
	uow persistence.UnitOfWork,
	settler settlement.Settler,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:          uow,
		settler:      settler,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetTransaction returns one store transaction
func (u *UseCase) GetTransaction(ctx context.Context, id string) (*entity.StoreTransaction, error) {
	return u.uow.GetStoreTransactionRepository(ctx).GetByID(ctx, id)
}

// ListForAccount returns the account's transactions newest-first
func (u *UseCase) ListForAccount(ctx context.Context, accountID string) ([]*entity.StoreTransaction, error) {
	if _, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.uow.GetStoreTransactionRepository(ctx).ListByAccount(ctx, accountID)
}

// ListPending returns the transactions waiting for an admin
func (u *UseCase) ListPending(ctx context.Context) ([]*entity.StoreTransaction, error) {
	return u.uow.GetStoreTransactionRepository(ctx).ListByStatus(ctx, entity.TransactionStatusPending)
}
