package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/harness"
)

func newUseCase(h *harness.Harness) *UseCase {
	return NewUseCase(h.Store, h.Executor, h.IDs, h.Clock, h.Logger)
}

func transactionCount(h *harness.Harness) int {
	_, transactions, _, _ := h.Store.Counts()
	return transactions
}

func TestUseCase_Purchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Extra lives beyond the balance fails", func(t *testing.T) {
		// Arrange
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 100, 5)
		useCase := newUseCase(h)

		// Act
		txn, err := useCase.Purchase(ctx, "acc-1", entity.ExtraLives{Tier: 2, TierAmount: 10, Cost: 180})

		// Assert
		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, 400, errs.HTTPStatus(err))
		assert.Equal(t, int64(100), h.Points("acc-1"))
		assert.Equal(t, int64(5), h.Lives("acc-1"))
		assert.Equal(t, 0, transactionCount(h))
	})

	t.Run("Redemption deducts and completes immediately", func(t *testing.T) {
		// Arrange
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 600, 5)
		useCase := newUseCase(h)

		// Act
		txn, err := useCase.Purchase(ctx, "acc-1", entity.ExternalCurrencyRedemption{Tier: 1, TierAmount: 100, Cost: 500})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusCompleted, txn.Status)
		assert.Equal(t, int64(100), h.Points("acc-1"))
		assert.Equal(t, 1, transactionCount(h))
	})

	t.Run("Extra lives deducts points and credits lives", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 200, 5)
		useCase := newUseCase(h)

		txn, err := useCase.Purchase(ctx, "acc-1", entity.ExtraLives{Tier: 2, TierAmount: 10, Cost: 180})

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionTypeExtraLives, txn.Type)
		assert.Equal(t, int64(20), h.Points("acc-1"))
		assert.Equal(t, int64(15), h.Lives("acc-1"))
	})

	t.Run("Point purchase never deducts and stays pending", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 0, 5)
		useCase := newUseCase(h)

		txn, err := useCase.Purchase(ctx, "acc-1", entity.PointPurchase{Tier: 3, TierAmount: 10000, Cost: 8500, PaymentRef: "TRX-991"})

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusPending, txn.Status)
		assert.Equal(t, int64(8500), txn.Cost)
		assert.Equal(t, int64(0), h.Points("acc-1"))

		pending, err := useCase.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, txn.ID, pending[0].ID)
	})

	t.Run("Invalid variant writes nothing", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 600, 5)
		useCase := newUseCase(h)

		_, err := useCase.Purchase(ctx, "acc-1", entity.ExtraLives{TierAmount: 0, Cost: 100})
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = useCase.Purchase(ctx, "acc-1", nil)
		assert.ErrorIs(t, err, errs.ErrValidation)

		assert.Equal(t, int64(600), h.Points("acc-1"))
		assert.Equal(t, 0, transactionCount(h))
	})

	t.Run("Failed row write leaves the balance untouched", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 600, 5)
		h.Store.FailOn("StoreTransactions.Create", errs.ErrDatabaseConnection)
		useCase := newUseCase(h)

		_, err := useCase.Purchase(ctx, "acc-1", entity.ExternalCurrencyRedemption{Tier: 1, TierAmount: 100, Cost: 500})

		assert.Error(t, err)
		assert.Equal(t, int64(600), h.Points("acc-1"))
		assert.Equal(t, 0, transactionCount(h))
	})

	t.Run("Failed balance write removes the transaction row", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 600, 5)
		h.Store.FailOn("Accounts.Update", errs.ErrDatabaseConnection)
		useCase := newUseCase(h)

		_, err := useCase.Purchase(ctx, "acc-1", entity.ExternalCurrencyRedemption{Tier: 1, TierAmount: 100, Cost: 500})

		assert.Error(t, err)
		assert.Equal(t, int64(600), h.Points("acc-1"))
		assert.Equal(t, 0, transactionCount(h))
	})

	t.Run("Unknown account", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)

		_, err := useCase.Purchase(ctx, "ghost", entity.ExtraLives{TierAmount: 5, Cost: 100})

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Concurrent purchases never overdraw", func(t *testing.T) {
		// Arrange
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 1000, 0)
		useCase := newUseCase(h)
		const attempts = 20

		// Act
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = useCase.Purchase(ctx, "acc-1", entity.ExtraLives{Tier: 1, TierAmount: 5, Cost: 100})
			}()
		}
		wg.Wait()

		// Assert
		assert.Equal(t, int64(0), h.Points("acc-1"))
		assert.Equal(t, int64(50), h.Lives("acc-1"))
		assert.Equal(t, 10, transactionCount(h))
	})
}

func TestUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending point purchase completes", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 0, 5)
		useCase := newUseCase(h)
		txn, err := useCase.Purchase(ctx, "acc-1", entity.PointPurchase{Tier: 1, TierAmount: 1000, Cost: 1000})
		require.NoError(t, err)

		updated, err := useCase.UpdateStatus(ctx, txn.ID, entity.TransactionStatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusCompleted, updated.Status)
		stored, err := useCase.GetTransaction(ctx, txn.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.TransactionStatusCompleted, stored.Status)
		assert.Equal(t, int64(0), h.Points("acc-1"))
	})

	t.Run("Status change is logged once with both states", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 0, 5)
		useCase := newUseCase(h)
		txn, err := useCase.Purchase(ctx, "acc-1", entity.PointPurchase{Tier: 1, TierAmount: 1000, Cost: 1000})
		require.NoError(t, err)

		_, err = useCase.UpdateStatus(ctx, txn.ID, entity.TransactionStatusCancelled)
		require.NoError(t, err)

		var logged []map[string]any
		for _, call := range h.Logger.Calls {
			if call.Method == "Info" && call.Arguments.String(0) == "Store transaction status changed" {
				logged = append(logged, call.Arguments.Get(1).(map[string]any))
			}
		}
		require.Len(t, logged, 1)
		assert.Equal(t, entity.TransactionStatusPending, logged[0]["from"])
		assert.Equal(t, entity.TransactionStatusCancelled, logged[0]["to"])
	})

	t.Run("Completed transactions are final", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 600, 5)
		useCase := newUseCase(h)
		txn, err := useCase.Purchase(ctx, "acc-1", entity.ExternalCurrencyRedemption{Tier: 1, TierAmount: 100, Cost: 500})
		require.NoError(t, err)

		_, err = useCase.UpdateStatus(ctx, txn.ID, entity.TransactionStatusCancelled)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)

		_, err := useCase.UpdateStatus(ctx, "ghost", entity.TransactionStatusCompleted)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, 404, errs.HTTPStatus(err))
	})
}

func TestUseCase_ListForAccount(t *testing.T) {
	ctx := context.Background()
	h := harness.New(t)
	h.SeedAccount(t, "acc-1", 1000, 5)
	h.SeedAccount(t, "acc-2", 1000, 5)
	useCase := newUseCase(h)

	_, err := useCase.Purchase(ctx, "acc-1", entity.ExtraLives{Tier: 1, TierAmount: 5, Cost: 100})
	require.NoError(t, err)
	_, err = useCase.Purchase(ctx, "acc-2", entity.ExtraLives{Tier: 1, TierAmount: 5, Cost: 100})
	require.NoError(t, err)

	list, err := useCase.ListForAccount(ctx, "acc-1")

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "acc-1", list[0].AccountID)
}

func TestUseCase_Tiers(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists active tiers of a category in tier order", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)
		inactive := false
		for _, input := range []entity.StoreTierInput{
			{Category: entity.TransactionTypeExtraLives, Tier: 2, Amount: 10, Cost: 180, Label: "10 Lives"},
			{Category: entity.TransactionTypeExtraLives, Tier: 1, Amount: 5, Cost: 100, Label: "5 Lives"},
			{Category: entity.TransactionTypeExtraLives, Tier: 3, Amount: 25, Cost: 400, Label: "25 Lives", IsActive: &inactive},
			{Category: entity.TransactionTypePointPurchase, Tier: 1, Amount: 1000, Cost: 1000, Label: "$10 USDT"},
		} {
			_, err := useCase.CreateTier(ctx, input)
			require.NoError(t, err)
		}
		category := entity.TransactionTypeExtraLives

		lives, err := useCase.ListTiers(ctx, &category)
		require.NoError(t, err)
		all, err := useCase.ListTiers(ctx, nil)
		require.NoError(t, err)

		require.Len(t, lives, 2)
		assert.Equal(t, 1, lives[0].Tier)
		assert.Equal(t, 2, lives[1].Tier)
		assert.Len(t, all, 3)
	})

	t.Run("Unknown category", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)
		category := entity.TransactionType("gift_cards")

		_, err := useCase.ListTiers(ctx, &category)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Duplicate tier number", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)
		input := entity.StoreTierInput{Category: entity.TransactionTypeExtraLives, Tier: 1, Amount: 5, Cost: 100, Label: "5 Lives"}
		_, err := useCase.CreateTier(ctx, input)
		require.NoError(t, err)

		_, err = useCase.CreateTier(ctx, input)

		assert.ErrorIs(t, err, errs.ErrDuplicateKey)
	})

	t.Run("Update changes the price", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)
		tier, err := useCase.CreateTier(ctx, entity.StoreTierInput{Category: entity.TransactionTypeExtraLives, Tier: 1, Amount: 5, Cost: 100, Label: "5 Lives"})
		require.NoError(t, err)
		cost := int64(90)

		updated, err := useCase.UpdateTier(ctx, tier.ID, entity.StoreTierPatch{Cost: &cost})

		require.NoError(t, err)
		assert.Equal(t, int64(90), updated.Cost)
	})
}
