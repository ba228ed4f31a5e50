package dto

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// GameResponse is one catalog entry
type GameResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	GameURL      string    `json:"gameUrl"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewGameResponse maps a game
func NewGameResponse(g *entity.Game) GameResponse {
	return GameResponse{
		ID:           g.ID,
		Title:        g.Title,
		Description:  g.Description,
		ThumbnailURL: g.ThumbnailURL,
		GameURL:      g.GameURL,
		IsActive:     g.IsActive,
		CreatedAt:    g.CreatedAt,
	}
}

// GameSessionRequest starts one play
type GameSessionRequest struct {
	AccountID string `json:"accountId"`
	GameID    string `json:"gameId"`
}

// GameSessionResponse is the play counter of an account and game pair
type GameSessionResponse struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"accountId"`
	GameID       string    `json:"gameId"`
	PlaysCount   int64     `json:"playsCount"`
	LastPlayedAt time.Time `json:"lastPlayedAt"`
}

// NewGameSessionResponse maps a game session
func NewGameSessionResponse(s *entity.GameSession) GameSessionResponse {
	return GameSessionResponse{
		ID:           s.ID,
		AccountID:    s.AccountID,
		GameID:       s.GameID,
		PlaysCount:   s.PlaysCount,
		LastPlayedAt: s.LastPlayedAt,
	}
}
