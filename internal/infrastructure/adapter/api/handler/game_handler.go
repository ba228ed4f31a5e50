package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/middleware"
)

// GameHandler handles the game catalog and game plays
type GameHandler struct {
	games usecase.GameUseCase
}

// NewGameHandler creates a new game handler instance
func NewGameHandler(games usecase.GameUseCase) *GameHandler {
	return &GameHandler{games: games}
}

// List handles GET /api/games. ?all=true also lists inactive games and is admin-only.
func (h *GameHandler) List(c *gin.Context) {
	includeInactive := c.Query("all") == "true"
	if includeInactive {
		who, ok := middleware.CallerFrom(c)
		if !ok {
			fail(c, errs.ErrUnauthenticated)
			return
		}
		if !who.IsAdmin {
			fail(c, errs.ErrPermissionDenied)
			return
		}
	}

	games, err := h.games.ListGames(c.Request.Context(), includeInactive)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapAll(games, dto.NewGameResponse))
}

// Get handles GET /api/games/:id
func (h *GameHandler) Get(c *gin.Context) {
	game, err := h.games.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// Create handles POST /api/games
func (h *GameHandler) Create(c *gin.Context) {
	var input entity.GameInput
	if !bindJSON(c, &input) {
		return
	}

	game, err := h.games.CreateGame(c.Request.Context(), input)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewGameResponse(game))
}

// Update handles PATCH /api/games/:id
func (h *GameHandler) Update(c *gin.Context) {
	var patch entity.GamePatch
	if !bindJSON(c, &patch) {
		return
	}

	game, err := h.games.UpdateGame(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameResponse(game))
}

// Play handles POST /api/game-sessions
func (h *GameHandler) Play(c *gin.Context) {
	var req dto.GameSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	accountID, ok := targetAccount(c, req.AccountID)
	if !ok {
		return
	}
	if req.GameID == "" {
		fail(c, errs.NewValidationError("gameId", "is required"))
		return
	}

	session, err := h.games.Play(c.Request.Context(), accountID, req.GameID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGameSessionResponse(session))
}
