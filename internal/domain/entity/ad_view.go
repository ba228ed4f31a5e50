package entity

import (
	"time"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

const (
	// AdUserSharePercent is the share of an ad's value credited to the viewer
	AdUserSharePercent int64 = 20
	// DefaultAdValue is used when a client reports an ad view without a value
	DefaultAdValue int64 = 100
	// MaxAdValue bounds the value a single reported ad view may carry
	MaxAdValue int64 = 1_000_000
)

// SplitAdValue is the single pricing function for ad revenue.
// userEarned is floor(adValue * 20%) and the platform takes the remainder,
// so the two shares always add up to adValue.
func SplitAdValue(adValue int64) (userEarned, platformEarned int64) {
	// split the multiplication so large values cannot overflow
	userEarned = (adValue/100)*AdUserSharePercent + (adValue%100)*AdUserSharePercent/100
	platformEarned = adValue - userEarned
	return userEarned, platformEarned
}

// AdViewRecord is the immutable ledger entry for a watched ad
type AdViewRecord struct {
	ID             string
	AccountID      string
	AdValue        int64
	UserEarned     int64
	PlatformEarned int64
	CreatedAt      time.Time
}

// NewAdViewRecord prices an ad view and builds its ledger record
func NewAdViewRecord(id, accountID string, adValue int64, now time.Time) (*AdViewRecord, error) {
	if adValue < 0 {
		return nil, errs.NewValidationError("adValue", "must not be negative")
	}
	if adValue > MaxAdValue {
		return nil, errs.NewValidationError("adValue", "must be at most 1000000")
	}
	userEarned, platformEarned := SplitAdValue(adValue)
	return &AdViewRecord{
		ID:             id,
		AccountID:      accountID,
		AdValue:        adValue,
		UserEarned:     userEarned,
		PlatformEarned: platformEarned,
		CreatedAt:      now,
	}, nil
}

// AdViewStats aggregates every recorded ad view
type AdViewStats struct {
	Total            int64
	TotalValue       int64
	UserEarnings     int64
	PlatformEarnings int64
}
