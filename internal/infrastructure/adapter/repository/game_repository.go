package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/model"
)

// GameRepository implements persistence.GameRepository using GORM
type GameRepository struct {
	base
}

var _ persistence.GameRepository = (*GameRepository)(nil)

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB, logger coreport.Logger) *GameRepository {
	return &GameRepository{base: newBase(db, logger)}
}

// List returns the catalog ordered by title
func (r *GameRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Game, error) {
	query := r.db.WithContext(ctx).Order("title ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var rows []model.Game
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("list games", err, errs.ErrGameNotFound, nil)
	}

	games := make([]*entity.Game, 0, len(rows))
	for i := range rows {
		games = append(games, rows[i].ToEntity())
	}
	return games, nil
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var row model.Game
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, r.handleDatabaseError("get game", err, errs.ErrGameNotFound, map[string]any{"gameId": id})
	}
	return row.ToEntity(), nil
}

// Create inserts a catalog entry
func (r *GameRepository) Create(ctx context.Context, game *entity.Game) error {
	if err := r.db.WithContext(ctx).Create(model.NewGame(game)).Error; err != nil {
		return r.handleDatabaseError("create game", err, errs.ErrGameNotFound, map[string]any{"title": game.Title})
	}
	return nil
}

// Update writes every mutable catalog field
func (r *GameRepository) Update(ctx context.Context, game *entity.Game) error {
	result := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("id = ?", game.ID).
		Updates(map[string]any{
			"title":         game.Title,
			"description":   game.Description,
			"thumbnail_url": game.ThumbnailURL,
			"game_url":      game.GameURL,
			"is_active":     game.IsActive,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update game", result.Error, errs.ErrGameNotFound, map[string]any{"gameId": game.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrGameNotFound
	}
	return nil
}

// GameSessionRepository implements persistence.GameSessionRepository using GORM
type GameSessionRepository struct {
	base
}

var _ persistence.GameSessionRepository = (*GameSessionRepository)(nil)

// NewGameSessionRepository creates a new GameSessionRepository
func NewGameSessionRepository(db *gorm.DB, logger coreport.Logger) *GameSessionRepository {
	return &GameSessionRepository{base: newBase(db, logger)}
}

// Find returns the session for the pair or errs.ErrNotFound
func (r *GameSessionRepository) Find(ctx context.Context, accountID, gameID string) (*entity.GameSession, error) {
	var row model.GameSession
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND game_id = ?", accountID, gameID).
		First(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("find game session", err, errs.ErrNotFound, map[string]any{
			"accountId": accountID,
			"gameId":    gameID,
		})
	}
	return row.ToEntity(), nil
}

// Create inserts the first session of a pair
func (r *GameSessionRepository) Create(ctx context.Context, session *entity.GameSession) error {
	if err := r.db.WithContext(ctx).Create(model.NewGameSession(session)).Error; err != nil {
		return r.handleDatabaseError("create game session", err, errs.ErrNotFound, map[string]any{
			"accountId": session.AccountID,
			"gameId":    session.GameID,
		})
	}
	return nil
}

// Update stores the play counter and timestamp
func (r *GameSessionRepository) Update(ctx context.Context, session *entity.GameSession) error {
	result := r.db.WithContext(ctx).Model(&model.GameSession{}).
		Where("id = ?", session.ID).
		Updates(map[string]any{
			"plays_count":    session.PlaysCount,
			"last_played_at": session.LastPlayedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update game session", result.Error, errs.ErrNotFound, map[string]any{"sessionId": session.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
