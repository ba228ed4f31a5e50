package dto

import (
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
)

// AccountResponse is an account without its password hash
type AccountResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email,omitempty"`
	Language      string    `json:"language"`
	PointsBalance int64     `json:"pointsBalance"`
	LivesBalance  int64     `json:"livesBalance"`
	IsAdmin       bool      `json:"isAdmin"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewAccountResponse maps an account for the API
func NewAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		Language:      a.Language,
		PointsBalance: a.Points(),
		LivesBalance:  a.Lives(),
		IsAdmin:       a.IsAdmin,
		CreatedAt:     a.CreatedAt,
	}
}

// LoginRequest carries the credentials for authenticate
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Account   AccountResponse `json:"account"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// NewAuthResponse maps an authentication result
func NewAuthResponse(r *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Account:   NewAccountResponse(r.Account),
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}
}
