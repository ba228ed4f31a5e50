package dto

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// PromotionSubmitRequest is a promotion submission for an account
type PromotionSubmitRequest struct {
	AccountID string `json:"accountId"`
	entity.PromotionRequest
}

// QuoteResponse is the price of a promotion before it is submitted
type QuoteResponse struct {
	GoalType     string `json:"goalType"`
	GoalAmount   int64  `json:"goalAmount"`
	DurationDays int    `json:"durationDays"`
	Cost         int64  `json:"cost"`
}

// PromotionResponse is one promotion record
type PromotionResponse struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"accountId"`
	Platform     string     `json:"platform"`
	VideoURL     string     `json:"videoUrl"`
	DurationDays int        `json:"durationDays"`
	GoalType     string     `json:"goalType"`
	GoalAmount   int64      `json:"goalAmount"`
	Cost         int64      `json:"cost"`
	Status       string     `json:"status"`
	ApprovedAt   *time.Time `json:"approvedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewPromotionResponse maps a promotion
func NewPromotionResponse(p *entity.VideoPromotion) PromotionResponse {
	return PromotionResponse{
		ID:           p.ID,
		AccountID:    p.AccountID,
		Platform:     string(p.Platform),
		VideoURL:     p.VideoURL,
		DurationDays: p.DurationDays,
		GoalType:     string(p.GoalType),
		GoalAmount:   p.GoalAmount,
		Cost:         p.Cost,
		Status:       string(p.Status),
		ApprovedAt:   p.ApprovedAt,
		CreatedAt:    p.CreatedAt,
	}
}
