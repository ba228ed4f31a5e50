package dto

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// AdViewRequest records one watched ad. AdValue defaults to the platform value.
type AdViewRequest struct {
	AccountID string `json:"accountId"`
	AdValue   *int64 `json:"adValue"`
}

// Value returns the requested ad value or the default
func (r AdViewRequest) Value() int64 {
	if r.AdValue == nil {
		return entity.DefaultAdValue
	}
	return *r.AdValue
}

// AdViewResponse is one settled ad view
type AdViewResponse struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	AdValue        int64     `json:"adValue"`
	UserEarned     int64     `json:"userEarned"`
	PlatformEarned int64     `json:"platformEarned"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewAdViewResponse maps an ad view record
func NewAdViewResponse(r *entity.AdViewRecord) AdViewResponse {
	return AdViewResponse{
		ID:             r.ID,
		AccountID:      r.AccountID,
		AdValue:        r.AdValue,
		UserEarned:     r.UserEarned,
		PlatformEarned: r.PlatformEarned,
		CreatedAt:      r.CreatedAt,
	}
}

// AdViewStatsResponse aggregates every ad view
type AdViewStatsResponse struct {
	Total            int64 `json:"total"`
	TotalValue       int64 `json:"totalValue"`
	UserEarnings     int64 `json:"userEarnings"`
	PlatformEarnings int64 `json:"platformEarnings"`
}

// NewAdViewStatsResponse maps the aggregate
func NewAdViewStatsResponse(s *entity.AdViewStats) AdViewStatsResponse {
	return AdViewStatsResponse{
		Total:            s.Total,
		TotalValue:       s.TotalValue,
		UserEarnings:     s.UserEarnings,
		PlatformEarnings: s.PlatformEarnings,
	}
}
