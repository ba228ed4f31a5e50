package account

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
)

// UseCase implements the Account Store operations
type UseCase struct {
	uow          persistence.UnitOfWork
	settler      settlement.Settler
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenIssuer
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AccountUseCase = (*UseCase)(nil)

// NewUseCase creates the account use case
func NewUseCase(
	uow persistence.UnitOfWork,
	settler settlement.Settler,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenIssuer,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		uow:          uow,
		settler:      settler,
		hasher:       hasher,
		tokens:       tokens,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetAccount returns an account by ID
func (u *UseCase) GetAccount(ctx context.Context, id string) (*entity.Account, error) {
	return u.uow.GetAccountRepository(ctx).GetByID(ctx, id)
}
