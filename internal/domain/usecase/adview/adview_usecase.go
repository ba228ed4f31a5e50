package adview

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
)

// OperationAdView labels ad view settlements in logs and metrics
const OperationAdView = "ad_view"

// UseCase implements the Ad-Settlement Service
type UseCase struct {
	uow          persistence.UnitOfWork
	settler      settlement.Settler
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
}

var _ usecase.AdViewUseCase = (*UseCase)(nil)

// NewUseCase creates the ad view use case
func NewUseCase(
	uow persistence.UnitOfWork,
	settler settlement.Settler,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
) *UseCase {
	return &UseCase{
		uow:          uow,
		settler:      settler,
		ids:          ids,
		timeProvider: timeProvider,
		metrics:      metrics,
	}
}

// RecordAdView stores the split as an immutable record and credits the
// user share, both in the same settlement
func (u *UseCase) RecordAdView(ctx context.Context, accountID string, adValue int64) (*entity.AdViewRecord, error) {
	record, err := entity.NewAdViewRecord(u.ids.NewID(), accountID, adValue, u.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	_, err = u.settler.Settle(ctx, accountID, OperationAdView, func(txCtx context.Context, account *entity.Account) error {
		if err := account.CreditPoints(record.UserEarned); err != nil {
			return err
		}
		return u.uow.GetAdViewRepository(txCtx).Create(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	u.metrics.AddPointsCredited(OperationAdView, record.UserEarned)
	return record, nil
}

// ListForAccount returns the account's ad views newest-first
func (u *UseCase) ListForAccount(ctx context.Context, accountID string) ([]*entity.AdViewRecord, error) {
	if _, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.uow.GetAdViewRepository(ctx).ListByAccount(ctx, accountID)
}

// Stats aggregates every recorded ad view
func (u *UseCase) Stats(ctx context.Context) (*entity.AdViewStats, error) {
	return u.uow.GetAdViewRepository(ctx).Stats(ctx)
}
