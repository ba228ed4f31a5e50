package entity

import (
	"time"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// Platform is where the promoted video is hosted
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformTikTok   Platform = "tiktok"
	PlatformFacebook Platform = "facebook"
)

// GoalType is what the promotion is paid to increase
type GoalType string

const (
	GoalTypeLikes GoalType = "likes"
	GoalTypeViews GoalType = "views"
)

// PromotionStatus is the review state of a promotion
type PromotionStatus string

const (
	PromotionStatusPending   PromotionStatus = "pending"
	PromotionStatusApproved  PromotionStatus = "approved"
	PromotionStatusRejected  PromotionStatus = "rejected"
	PromotionStatusActive    PromotionStatus = "active"
	PromotionStatusCompleted PromotionStatus = "completed"
)

// IsValid reports whether s is a known status
func (s PromotionStatus) IsValid() bool {
	switch s {
	case PromotionStatusPending, PromotionStatusApproved, PromotionStatusRejected,
		PromotionStatusActive, PromotionStatusCompleted:
		return true
	}
	return false
}

// promotion pricing in percent of the goal per 7 days
const (
	viewsRatePercent int64 = 5
	likesRatePercent int64 = 10
	pricingWeekDays  int64 = 7
)

// promotionTransitions lists the allowed moves out of each status
var promotionTransitions = map[PromotionStatus][]PromotionStatus{
	PromotionStatusPending:  {PromotionStatusApproved, PromotionStatusRejected},
	PromotionStatusApproved: {PromotionStatusActive, PromotionStatusRejected},
	PromotionStatusActive:   {PromotionStatusCompleted},
}

// PromotionCost computes ceil(goalAmount * rate * durationDays / 7) where rate is
// 0.05 for views and 0.10 for likes. Integer arithmetic keeps the result exact.
func PromotionCost(goalType GoalType, goalAmount int64, durationDays int) int64 {
	rate := likesRatePercent
	if goalType == GoalTypeViews {
		rate = viewsRatePercent
	}
	numerator := goalAmount * rate * int64(durationDays)
	denominator := 100 * pricingWeekDays
	return (numerator + denominator - 1) / denominator
}

// PromotionRequest is a validated promotion submission
type PromotionRequest struct {
	Platform     Platform `json:"platform" validate:"required,oneof=youtube tiktok facebook"`
	VideoURL     string   `json:"videoUrl" validate:"required,url,max=2048"`
	DurationDays int      `json:"durationDays" validate:"required,min=1,max=90"`
	GoalType     GoalType `json:"goalType" validate:"required,oneof=likes views"`
	GoalAmount   int64    `json:"goalAmount" validate:"required,min=100,max=1000000"`
}

// Cost prices the request
func (r PromotionRequest) Cost() int64 {
	return PromotionCost(r.GoalType, r.GoalAmount, r.DurationDays)
}

// VideoPromotion is the ledger record of a paid promotion
type VideoPromotion struct {
	ID           string
	AccountID    string
	Platform     Platform
	VideoURL     string
	DurationDays int
	GoalType     GoalType
	GoalAmount   int64
	Cost         int64
	Status       PromotionStatus
	ApprovedAt   *time.Time
	CreatedAt    time.Time
}

// NewVideoPromotion builds a pending promotion priced from the request
func NewVideoPromotion(id, accountID string, req PromotionRequest, now time.Time) *VideoPromotion {
	return &VideoPromotion{
		ID:           id,
		AccountID:    accountID,
		Platform:     req.Platform,
		VideoURL:     req.VideoURL,
		DurationDays: req.DurationDays,
		GoalType:     req.GoalType,
		GoalAmount:   req.GoalAmount,
		Cost:         req.Cost(),
		Status:       PromotionStatusPending,
		CreatedAt:    now,
	}
}

// TransitionTo applies an admin review decision. Approval stamps ApprovedAt.
func (p *VideoPromotion) TransitionTo(status PromotionStatus, now time.Time) error {
	allowed := false
	for _, next := range promotionTransitions[p.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return errs.ErrInvalidStatusTransition
	}
	p.Status = status
	if status == PromotionStatusApproved {
		approvedAt := now
		p.ApprovedAt = &approvedAt
	}
	return nil
}
