package entity

import "time"

// Game is a catalog entry a player can launch
type Game struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	GameURL      string
	IsActive     bool
	CreatedAt    time.Time
}

// GameInput is the validated create payload for a catalog entry
type GameInput struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	GameURL      string `json:"gameUrl" validate:"required,url"`
	IsActive     *bool  `json:"isActive"`
}

// GamePatch lists the catalog fields an admin may change
type GamePatch struct {
	Title        *string `json:"title" validate:"omitempty,max=200"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url"`
	GameURL      *string `json:"gameUrl" validate:"omitempty,url"`
	IsActive     *bool   `json:"isActive"`
}

// Apply copies the set fields onto g
func (p GamePatch) Apply(g *Game) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.ThumbnailURL != nil {
		g.ThumbnailURL = *p.ThumbnailURL
	}
	if p.GameURL != nil {
		g.GameURL = *p.GameURL
	}
	if p.IsActive != nil {
		g.IsActive = *p.IsActive
	}
}

// GameSession counts plays per (account, game). Created lazily on first play.
type GameSession struct {
	ID           string
	AccountID    string
	GameID       string
	PlaysCount   int64
	LastPlayedAt time.Time
}

// NewGameSession creates an empty session for a first play
func NewGameSession(id, accountID, gameID string, now time.Time) *GameSession {
	return &GameSession{
		ID:           id,
		AccountID:    accountID,
		GameID:       gameID,
		LastPlayedAt: now,
	}
}

// RecordPlay counts one play
func (s *GameSession) RecordPlay(now time.Time) {
	s.PlaysCount++
	s.LastPlayedAt = now
}
