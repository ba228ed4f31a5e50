package model

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// VideoPromotion is the row of one paid promotion submission
type VideoPromotion struct {
	ID           string     `gorm:"primaryKey;type:varchar(64)"`
	AccountID    string     `gorm:"not null;index;type:varchar(64)"`
	Platform     string     `gorm:"not null;size:20"`
	VideoURL     string     `gorm:"not null;size:2048"`
	DurationDays int        `gorm:"not null"`
	GoalType     string     `gorm:"not null;size:20"`
	GoalAmount   int64      `gorm:"not null"`
	Cost         int64      `gorm:"not null"`
	Status       string     `gorm:"not null;size:20;index"`
	ApprovedAt   *time.Time `gorm:"column:approved_at"`
	CreatedAt    time.Time  `gorm:"not null;index"`
}

// TableName specifies the table name for VideoPromotion
func (VideoPromotion) TableName() string {
	return "video_promotions"
}

// NewVideoPromotion converts an entity into a row
func NewVideoPromotion(p *entity.VideoPromotion) *VideoPromotion {
	return &VideoPromotion{
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

// ToEntity converts the row back
func (m *VideoPromotion) ToEntity() *entity.VideoPromotion {
	return &entity.VideoPromotion{
		ID:           m.ID,
		AccountID:    m.AccountID,
		Platform:     entity.Platform(m.Platform),
		VideoURL:     m.VideoURL,
		DurationDays: m.DurationDays,
		GoalType:     entity.GoalType(m.GoalType),
		GoalAmount:   m.GoalAmount,
		Cost:         m.Cost,
		Status:       entity.PromotionStatus(m.Status),
		ApprovedAt:   m.ApprovedAt,
		CreatedAt:    m.CreatedAt,
	}
}
