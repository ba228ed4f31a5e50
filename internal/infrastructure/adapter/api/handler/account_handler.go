package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
	"github.com/gemasgo/gemasgo-ledger/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles registration, login and account requests
type AccountHandler struct {
	accounts usecase.AccountUseCase
	logger   coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accounts usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Register handles POST /api/auth/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req entity.RegistrationRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// Login handles POST /api/auth/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Debug("Login rejected", map[string]any{"username": req.Username})
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result))
}

// Me handles GET /api/auth/me
func (h *AccountHandler) Me(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}
	h.respondAccount(c, who.AccountID)
}

// GetAccount handles GET /api/accounts/:id
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := targetAccount(c, c.Param("id"))
	if !ok {
		return
	}
	h.respondAccount(c, accountID)
}

func (h *AccountHandler) respondAccount(c *gin.Context, accountID string) {
	account, err := h.accounts.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}

// UpdateAccount handles PATCH /api/accounts/:id. Which fields the caller may
// touch is decided by the use case.
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	who, ok := caller(c)
	if !ok {
		return
	}

	var patch entity.AccountPatch
	if !bindJSON(c, &patch) {
		return
	}

	account, err := h.accounts.UpdateAccount(c.Request.Context(), who, c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccountResponse(account))
}
