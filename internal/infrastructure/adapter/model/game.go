package model

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// Game is a catalog row
type Game struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	Title        string    `gorm:"not null;size:200"`
	Description  string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"size:2048"`
	GameURL      string    `gorm:"not null;size:2048"`
	IsActive     bool      `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}

// NewGame converts an entity into a row
func NewGame(g *entity.Game) *Game {
	return &Game{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		ThumbnailURL: g.ThumbnailURL,
		GameURL:      g.GameURL,
		IsActive:     g.IsActive,
		CreatedAt:    g.CreatedAt,
	}
}

// ToEntity converts the row back
func (m *Game) ToEntity() *entity.Game {
	return &entity.Game{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		GameURL:      m.GameURL,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

// GameSession counts plays per (account, game)
type GameSession struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	AccountID    string    `gorm:"not null;uniqueIndex:idx_game_sessions_account_game,priority:1;type:varchar(64)"`
	GameID       string    `gorm:"not null;uniqueIndex:idx_game_sessions_account_game,priority:2;type:varchar(64)"`
	PlaysCount   int64     `gorm:"not null"`
	LastPlayedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GameSession
func (GameSession) TableName() string {
	return "game_sessions"
}

// NewGameSession converts an entity into a row
func NewGameSession(s *entity.GameSession) *GameSession {
	return &GameSession{
		ID:           s.ID,
		AccountID:    s.AccountID,
		GameID:       s.GameID,
		PlaysCount:   s.PlaysCount,
		LastPlayedAt: s.LastPlayedAt,
	}
}

// ToEntity converts the row back
func (m *GameSession) ToEntity() *entity.GameSession {
	return &entity.GameSession{
		ID:           m.ID,
		AccountID:    m.AccountID,
		GameID:       m.GameID,
		PlaysCount:   m.PlaysCount,
		LastPlayedAt: m.LastPlayedAt,
	}
}
