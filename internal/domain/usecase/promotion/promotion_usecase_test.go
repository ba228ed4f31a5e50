package promotion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/testutil/harness"
)

func newUseCase(h *harness.Harness) *UseCase {
	return NewUseCase(h.Store, h.Executor, h.IDs, h.Clock, h.Logger)
}

func youtubeViews(amount int64, days int) entity.PromotionRequest {
	return entity.PromotionRequest{
		Platform:     entity.PlatformYouTube,
		VideoURL:     "https://youtube.com/watch?v=abc",
		DurationDays: days,
		GoalType:     entity.GoalTypeViews,
		GoalAmount:   amount,
	}
}

func TestUseCase_Quote(t *testing.T) {
	h := harness.New(t)
	useCase := newUseCase(h)

	t.Run("Views for one week", func(t *testing.T) {
		cost, err := useCase.Quote(entity.GoalTypeViews, 10000, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(500), cost)
	})

	t.Run("Likes for three days", func(t *testing.T) {
		cost, err := useCase.Quote(entity.GoalTypeLikes, 5000, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(215), cost)
	})

	t.Run("Out of range inputs", func(t *testing.T) {
		_, err := useCase.Quote("shares", 50, 0)
		details := errs.ValidationDetails(err)
		assert.Contains(t, details, "goalType")
		assert.Contains(t, details, "goalAmount")
		assert.Contains(t, details, "durationDays")
	})
}

func TestUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Deducts the quoted cost and stays pending", func(t *testing.T) {
		// Arrange
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 800, 5)
		useCase := newUseCase(h)

		// Act
		promotion, err := useCase.Submit(ctx, "acc-1", youtubeViews(10000, 7))

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(500), promotion.Cost)
		assert.Equal(t, entity.PromotionStatusPending, promotion.Status)
		assert.Equal(t, int64(300), h.Points("acc-1"))
	})

	t.Run("Insufficient points record nothing", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 499, 5)
		useCase := newUseCase(h)

		promotion, err := useCase.Submit(ctx, "acc-1", youtubeViews(10000, 7))

		assert.Nil(t, promotion)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(499), h.Points("acc-1"))
		_, _, promotions, _ := h.Store.Counts()
		assert.Equal(t, 0, promotions)
	})

	t.Run("Invalid request", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 800, 5)
		useCase := newUseCase(h)
		req := youtubeViews(10000, 120)

		_, err := useCase.Submit(ctx, "acc-1", req)

		assert.Contains(t, errs.ValidationDetails(err), "durationDays")
		assert.Equal(t, int64(800), h.Points("acc-1"))
	})

	t.Run("Unknown account", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)

		_, err := useCase.Submit(ctx, "ghost", youtubeViews(10000, 7))

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}

func TestUseCase_Review(t *testing.T) {
	ctx := context.Background()

	t.Run("Approval stamps approvedAt", func(t *testing.T) {
		// Arrange
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 800, 5)
		useCase := newUseCase(h)
		promotion, err := useCase.Submit(ctx, "acc-1", youtubeViews(10000, 7))
		require.NoError(t, err)
		h.Clock.Advance(2 * time.Hour)

		// Act
		approved, err := useCase.UpdateStatus(ctx, promotion.ID, entity.PromotionStatusApproved)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, approved.ApprovedAt)
		assert.Equal(t, harness.Epoch.Add(2*time.Hour), *approved.ApprovedAt)

		listed, err := useCase.ListByStatus(ctx, entity.PromotionStatusApproved)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.NotNil(t, listed[0].ApprovedAt)
	})

	t.Run("Rejection keeps the charge", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 800, 5)
		useCase := newUseCase(h)
		promotion, err := useCase.Submit(ctx, "acc-1", youtubeViews(10000, 7))
		require.NoError(t, err)

		rejected, err := useCase.UpdateStatus(ctx, promotion.ID, entity.PromotionStatusRejected)

		require.NoError(t, err)
		assert.Equal(t, entity.PromotionStatusRejected, rejected.Status)
		assert.Equal(t, int64(300), h.Points("acc-1"))
	})

	t.Run("Illegal transition", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 800, 5)
		useCase := newUseCase(h)
		promotion, err := useCase.Submit(ctx, "acc-1", youtubeViews(10000, 7))
		require.NoError(t, err)

		_, err = useCase.UpdateStatus(ctx, promotion.ID, entity.PromotionStatusCompleted)

		assert.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		pending, err := useCase.ListByStatus(ctx, entity.PromotionStatusPending)
		require.NoError(t, err)
		assert.Len(t, pending, 1)
	})

	t.Run("Unknown promotion", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)

		_, err := useCase.UpdateStatus(ctx, "ghost", entity.PromotionStatusApproved)

		assert.ErrorIs(t, err, errs.ErrPromotionNotFound)
	})

	t.Run("Lists newest first", func(t *testing.T) {
		h := harness.New(t)
		h.SeedAccount(t, "acc-1", 5000, 5)
		useCase := newUseCase(h)
		first, err := useCase.Submit(ctx, "acc-1", youtubeViews(1000, 7))
		require.NoError(t, err)
		h.Clock.Advance(time.Minute)
		second, err := useCase.Submit(ctx, "acc-1", youtubeViews(2000, 7))
		require.NoError(t, err)

		list, err := useCase.ListForAccount(ctx, "acc-1")

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		h := harness.New(t)
		useCase := newUseCase(h)

		_, err := useCase.ListByStatus(ctx, "archived")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
