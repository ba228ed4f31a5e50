package entity

import (
	"testing"
	"time"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotionCost(t *testing.T) {
	testCases := []struct {
		name     string
		goalType GoalType
		amount   int64
		days     int
		expected int64
	}{
		{"Views for one week", GoalTypeViews, 10000, 7, 500},
		{"Likes for three days rounds up", GoalTypeLikes, 5000, 3, 215},
		{"Minimum goal one day views", GoalTypeViews, 100, 1, 1},
		{"Likes for two weeks", GoalTypeLikes, 1000, 14, 200},
		{"Exact multiple does not round", GoalTypeViews, 1400, 1, 10},
		{"Maximum goal longest duration", GoalTypeLikes, 1000000, 90, 1285715},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PromotionCost(tc.goalType, tc.amount, tc.days))
		})
	}
}

func TestPromotionRequestValidation(t *testing.T) {
	valid := PromotionRequest{
		Platform:     PlatformYouTube,
		VideoURL:     "https://youtube.com/watch?v=abc",
		DurationDays: 7,
		GoalType:     GoalTypeViews,
		GoalAmount:   10000,
	}

	t.Run("Valid request", func(t *testing.T) {
		assert.NoError(t, Validate(valid))
		assert.Equal(t, int64(500), valid.Cost())
	})

	t.Run("Unknown platform and small goal", func(t *testing.T) {
		bad := valid
		bad.Platform = "myspace"
		bad.GoalAmount = 50

		details := errs.ValidationDetails(Validate(bad))
		assert.Contains(t, details, "platform")
		assert.Contains(t, details, "goalAmount")
	})

	t.Run("Goal above maximum", func(t *testing.T) {
		bad := valid
		bad.GoalAmount = 1000001
		assert.ErrorIs(t, Validate(bad), errs.ErrValidation)
	})

	t.Run("Invalid url", func(t *testing.T) {
		bad := valid
		bad.VideoURL = "not a url"
		assert.Contains(t, errs.ValidationDetails(Validate(bad)), "videoUrl")
	})
}

func TestVideoPromotionTransitions(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	req := PromotionRequest{
		Platform:     PlatformTikTok,
		VideoURL:     "https://tiktok.com/@me/video/1",
		DurationDays: 3,
		GoalType:     GoalTypeLikes,
		GoalAmount:   5000,
	}

	t.Run("New promotion is pending and priced", func(t *testing.T) {
		promotion := NewVideoPromotion("p-1", "acc-1", req, now)

		assert.Equal(t, PromotionStatusPending, promotion.Status)
		assert.Equal(t, int64(215), promotion.Cost)
		assert.Nil(t, promotion.ApprovedAt)
	})

	t.Run("Approval stamps approvedAt", func(t *testing.T) {
		promotion := NewVideoPromotion("p-1", "acc-1", req, now)
		approvedAt := now.Add(time.Hour)

		require.NoError(t, promotion.TransitionTo(PromotionStatusApproved, approvedAt))

		require.NotNil(t, promotion.ApprovedAt)
		assert.Equal(t, approvedAt, *promotion.ApprovedAt)
	})

	t.Run("Full lifecycle", func(t *testing.T) {
		promotion := NewVideoPromotion("p-1", "acc-1", req, now)

		require.NoError(t, promotion.TransitionTo(PromotionStatusApproved, now))
		require.NoError(t, promotion.TransitionTo(PromotionStatusActive, now))
		require.NoError(t, promotion.TransitionTo(PromotionStatusCompleted, now))
		assert.Equal(t, PromotionStatusCompleted, promotion.Status)
	})

	t.Run("Rejected is terminal", func(t *testing.T) {
		promotion := NewVideoPromotion("p-1", "acc-1", req, now)
		require.NoError(t, promotion.TransitionTo(PromotionStatusRejected, now))

		err := promotion.TransitionTo(PromotionStatusApproved, now)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, PromotionStatusRejected, promotion.Status)
	})

	t.Run("Cannot skip review", func(t *testing.T) {
		promotion := NewVideoPromotion("p-1", "acc-1", req, now)
		assert.ErrorIs(t, promotion.TransitionTo(PromotionStatusActive, now), errs.ErrInvalidStatusTransition)
	})
}
