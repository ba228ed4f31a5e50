package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

func TestAccount_ToEntity(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Hydrates balances", func(t *testing.T) {
		row := &Account{ID: "acc-1", Username: "maria", Language: "es", PointsBalance: 120, LivesBalance: 3, CreatedAt: created}

		account, err := row.ToEntity()

		require.NoError(t, err)
		assert.Equal(t, int64(120), account.Points())
		assert.Equal(t, int64(3), account.Lives())
		assert.Equal(t, row, NewAccount(account))
	})

	t.Run("Negative stored balance is rejected", func(t *testing.T) {
		row := &Account{ID: "acc-1", PointsBalance: -1}

		_, err := row.ToEntity()

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestStoreTransaction_RoundTrip(t *testing.T) {
	txn := entity.NewStoreTransaction("txn-1", "acc-1", entity.ExtraLives{Tier: 2, TierAmount: 10, Cost: 180}, time.Now().UTC())

	row := NewStoreTransaction(txn)

	assert.Equal(t, "extra_lives", row.Type)
	assert.Equal(t, "completed", row.Status)
	assert.Equal(t, txn, row.ToEntity())
}

func TestVideoPromotion_RoundTrip(t *testing.T) {
	approved := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	promotion := &entity.VideoPromotion{
		ID:         "promo-1",
		AccountID:  "acc-1",
		Platform:   entity.PlatformTikTok,
		GoalType:   entity.GoalTypeLikes,
		GoalAmount: 5000,
		Cost:       215,
		Status:     entity.PromotionStatusApproved,
		ApprovedAt: &approved,
	}

	assert.Equal(t, promotion, NewVideoPromotion(promotion).ToEntity())
}
