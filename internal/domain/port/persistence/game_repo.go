package persistence

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// GameRepository stores the game catalog
type GameRepository interface {
	// List returns games ordered by title, only active ones when activeOnly is set
	List(ctx context.Context, activeOnly bool) ([]*entity.Game, error)

	// GetByID retrieves a game
	//
	// Possible errors:
	// - ErrGameNotFound: If the game doesn't exist
	GetByID(ctx context.Context, id string) (*entity.Game, error)

	Create(ctx context.Context, game *entity.Game) error
	Update(ctx context.Context, game *entity.Game) error
}

// GameSessionRepository stores per (account, game) play counters
type GameSessionRepository interface {
	// Find returns the session for the pair
	//
	// Possible errors:
	// - ErrNotFound: If the pair has never played
	Find(ctx context.Context, accountID, gameID string) (*entity.GameSession, error)

	Create(ctx context.Context, session *entity.GameSession) error
	Update(ctx context.Context, session *entity.GameSession) error
}
