package dto

import "github.com/gemasgo/gemasgo-ledger/internal/domain/entity"

// BalanceResponse represents the API response for an account's balances
type BalanceResponse struct {
	AccountID     string `json:"accountId"`
	PointsBalance int64  `json:"pointsBalance"`
	LivesBalance  int64  `json:"livesBalance"`
}

// NewBalanceResponse reads the balances of a settled account
func NewBalanceResponse(a *entity.Account) BalanceResponse {
	return BalanceResponse{
		AccountID:     a.ID,
		PointsBalance: a.Points(),
		LivesBalance:  a.Lives(),
	}
}
