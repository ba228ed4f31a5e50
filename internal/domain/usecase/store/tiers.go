package store

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// ListTiers returns the active catalog, optionally for one category
func (u *UseCase) ListTiers(ctx context.Context, category *entity.TransactionType) ([]*entity.StoreTier, error) {
	if category != nil && !category.IsValid() {
		return nil, errs.NewValidationError("category", "must be one of external_currency_redemption extra_lives point_purchase")
	}
	return u.uow.GetStoreTierRepository(ctx).List(ctx, category)
}

// CreateTier adds a catalog tier
func (u *UseCase) CreateTier(ctx context.Context, input entity.StoreTierInput) (*entity.StoreTier, error) {
	if err := entity.Validate(input); err != nil {
		return nil, err
	}

	tier := &entity.StoreTier{
		ID:        u.ids.NewID(),
		Category:  input.Category,
		Tier:      input.Tier,
		Amount:    input.Amount,
		Cost:      input.Cost,
		Label:     input.Label,
		IsActive:  input.IsActive == nil || *input.IsActive,
		CreatedAt: u.timeProvider.Now(),
	}
	if err := u.uow.GetStoreTierRepository(ctx).Create(ctx, tier); err != nil {
		return nil, err
	}
	return tier, nil
}

// UpdateTier applies a partial tier update
func (u *UseCase) UpdateTier(ctx context.Context, id string, patch entity.StoreTierPatch) (*entity.StoreTier, error) {
	if err := entity.Validate(patch); err != nil {
		return nil, err
	}

	var tier *entity.StoreTier
	err := u.uow.Within(ctx, func(txCtx context.Context) error {
		tiers := u.uow.GetStoreTierRepository(txCtx)
		current, err := tiers.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		patch.Apply(current)
		if err := tiers.Update(txCtx, current); err != nil {
			return err
		}
		tier = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tier, nil
}
