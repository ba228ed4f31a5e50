package promotion

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
)

// OperationPromotion labels promotion settlements in logs and metrics
const OperationPromotion = "video_promotion"

// UseCase implements the Promotion Service
type UseCase struct {
	uow          persistence.UnitOfWork
	settler      settlement.Settler
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.PromotionUseCase = (*UseCase)(nil)

// NewUseCase creates the promotion use case
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

// quoteRequest carries only the priced fields of a submission
type quoteRequest struct {
	GoalType     entity.GoalType `json:"goalType" validate:"oneof=views likes"`
	GoalAmount   int64           `json:"goalAmount" validate:"min=100,max=1000000"`
	DurationDays int             `json:"durationDays" validate:"min=1,max=90"`
}

// Quote prices a promotion with the same function Submit charges
func (u *UseCase) Quote(goalType entity.GoalType, goalAmount int64, durationDays int) (int64, error) {
	if err := entity.Validate(quoteRequest{GoalType: goalType, GoalAmount: goalAmount, DurationDays: durationDays}); err != nil {
		return 0, err
	}
	return entity.PromotionCost(goalType, goalAmount, durationDays), nil
}

// Submit deducts the cost and records the promotion as pending in one settlement
func (u *UseCase) Submit(ctx context.Context, accountID string, req entity.PromotionRequest) (*entity.VideoPromotion, error) {
	if err := entity.Validate(req); err != nil {
		return nil, err
	}

	promotion := entity.NewVideoPromotion(u.ids.NewID(), accountID, req, u.timeProvider.Now())

	_, err := u.settler.Settle(ctx, accountID, OperationPromotion, func(txCtx context.Context, account *entity.Account) error {
		if err := account.DebitPoints(promotion.Cost); err != nil {
			return err
		}
		return u.uow.GetPromotionRepository(txCtx).Create(txCtx, promotion)
	})
	if err != nil {
		return nil, err
	}
	return promotion, nil
}

// ListForAccount returns the account's promotions newest-first
func (u *UseCase) ListForAccount(ctx context.Context, accountID string) ([]*entity.VideoPromotion, error) {
	if _, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.uow.GetPromotionRepository(ctx).ListByAccount(ctx, accountID)
}

// ListByStatus returns promotions in one status newest-first
func (u *UseCase) ListByStatus(ctx context.Context, status entity.PromotionStatus) ([]*entity.VideoPromotion, error) {
	if !status.IsValid() {
		return nil, errs.NewValidationError("status", "must be one of pending approved rejected active completed")
	}
	return u.uow.GetPromotionRepository(ctx).ListByStatus(ctx, status)
}

// UpdateStatus applies an admin transition. Approval stamps approvedAt.
// Rejection does not refund the cost.
func (u *UseCase) UpdateStatus(ctx context.Context, id string, status entity.PromotionStatus) (*entity.VideoPromotion, error) {
	var promotion *entity.VideoPromotion
	err := u.uow.Within(ctx, func(txCtx context.Context) error {
		promotions := u.uow.GetPromotionRepository(txCtx)

		current, err := promotions.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		previous := current.Status
		if err := current.TransitionTo(status, u.timeProvider.Now()); err != nil {
			return err
		}
		if err := promotions.UpdateStatus(txCtx, current); err != nil {
			return err
		}

		u.logger.Info("Video promotion status changed", map[string]any{
			"promotionId": current.ID,
			"accountId":   current.AccountID,
			"from":        previous,
			"to":          current.Status,
		})
		promotion = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return promotion, nil
}
