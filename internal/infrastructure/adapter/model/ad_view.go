package model

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// AdView is the immutable ledger row of one watched ad
type AdView struct {
	ID             string    `gorm:"primaryKey;type:varchar(64)"`
	AccountID      string    `gorm:"not null;index:idx_ad_views_account_created,priority:1;type:varchar(64)"`
	AdValue        int64     `gorm:"not null"`
	UserEarned     int64     `gorm:"not null"`
	PlatformEarned int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null;index:idx_ad_views_account_created,priority:2,sort:desc"`
}

// TableName specifies the table name for AdView
func (AdView) TableName() string {
	return "ad_views"
}

// NewAdView converts an entity into a row
func NewAdView(r *entity.AdViewRecord) *AdView {
	return &AdView{
		ID:             r.ID,
		AccountID:      r.AccountID,
		AdValue:        r.AdValue,
		UserEarned:     r.UserEarned,
		PlatformEarned: r.PlatformEarned,
		CreatedAt:      r.CreatedAt,
	}
}

// ToEntity converts the row back
func (m *AdView) ToEntity() *entity.AdViewRecord {
	return &entity.AdViewRecord{
		ID:             m.ID,
		AccountID:      m.AccountID,
		AdValue:        m.AdValue,
		UserEarned:     m.UserEarned,
		PlatformEarned: m.PlatformEarned,
		CreatedAt:      m.CreatedAt,
	}
}
