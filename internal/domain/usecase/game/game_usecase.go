package game

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/usecase/settlement"
)

// OperationGamePlay labels play settlements in logs and metrics
const OperationGamePlay = "game_play"

// UseCase implements the game catalog and play counters
type UseCase struct {
	uow          persistence.UnitOfWork
	settler      settlement.Settler
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	livesPerPlay int64
}

var _ usecase.GameUseCase = (*UseCase)(nil)

// NewUseCase creates the game use case. A play consumes livesPerPlay lives; zero disables it.
func NewUseCase(
	uow persistence.UnitOfWork,
	settler settlement.Settler,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	livesPerPlay int64,
) *UseCase {
	if livesPerPlay < 0 {
		livesPerPlay = 0
	}
	return &UseCase{
		uow:          uow,
		settler:      settler,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		livesPerPlay: livesPerPlay,
	}
}

// ListGames returns the catalog ordered by title
func (u *UseCase) ListGames(ctx context.Context, includeInactive bool) ([]*entity.Game, error) {
	return u.uow.GetGameRepository(ctx).List(ctx, !includeInactive)
}

// GetGame returns one catalog entry
func (u *UseCase) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	return u.uow.GetGameRepository(ctx).GetByID(ctx, id)
}

// CreateGame adds a catalog entry, active unless stated otherwise
func (u *UseCase) CreateGame(ctx context.Context, input entity.GameInput) (*entity.Game, error) {
	if err := entity.Validate(input); err != nil {
		return nil, err
	}

	game := &entity.Game{
		ID:           u.ids.NewID(),
		Title:        input.Title,
		Description:  input.Description,
		ThumbnailURL: input.ThumbnailURL,
		GameURL:      input.GameURL,
		IsActive:     input.IsActive == nil || *input.IsActive,
		CreatedAt:    u.timeProvider.Now(),
	}
	if err := u.uow.GetGameRepository(ctx).Create(ctx, game); err != nil {
		return nil, err
	}

	u.logger.Info("Game created", map[string]any{
		"gameId": game.ID,
		"title":  game.Title,
	})
	return game, nil
}

// UpdateGame applies a partial catalog update
func (u *UseCase) UpdateGame(ctx context.Context, id string, patch entity.GamePatch) (*entity.Game, error) {
	if err := entity.Validate(patch); err != nil {
		return nil, err
	}

	var game *entity.Game
	err := u.uow.Within(ctx, func(txCtx context.Context) error {
		games := u.uow.GetGameRepository(txCtx)
		current, err := games.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		patch.Apply(current)
		if err := games.Update(txCtx, current); err != nil {
			return err
		}
		game = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Play counts one play of an active game, creating the session on first play.
// When lives are consumed the debit and the counter commit together.
func (u *UseCase) Play(ctx context.Context, accountID, gameID string) (*entity.GameSession, error) {
	game, err := u.uow.GetGameRepository(ctx).GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsActive {
		return nil, errs.ErrGameInactive
	}

	now := u.timeProvider.Now()
	var session *entity.GameSession

	_, err = u.settler.Settle(ctx, accountID, OperationGamePlay, func(txCtx context.Context, account *entity.Account) error {
		if u.livesPerPlay > 0 {
			if err := account.DebitLives(u.livesPerPlay); err != nil {
				return err
			}
		}

		sessions := u.uow.GetGameSessionRepository(txCtx)
		current, err := sessions.Find(txCtx, accountID, gameID)
		switch {
		case err == nil:
			current.RecordPlay(now)
			err = sessions.Update(txCtx, current)
		case errs.IsNotFoundError(err):
			current = entity.NewGameSession(u.ids.NewID(), accountID, gameID, now)
			current.RecordPlay(now)
			err = sessions.Create(txCtx, current)
		}
		if err != nil {
			return err
		}
		session = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}
