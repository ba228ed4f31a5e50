package entity

import (
	"math"
	"time"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

const (
	// DefaultLanguage is assigned when registration omits a language
	DefaultLanguage = "es"
	// DefaultLives is the lives balance every new account starts with
	DefaultLives int64 = 5
)

// Account is the only aggregate that owns balance state.
// Balances are private so they can only move through the settlement methods below.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Language     string
	IsAdmin      bool
	CreatedAt    time.Time

	pointsBalance int64
	livesBalance  int64
}

// NewAccount creates an account with the registration defaults
func NewAccount(id, username, email, passwordHash, language string, now time.Time) *Account {
	if language == "" {
		language = DefaultLanguage
	}
	return &Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Language:     language,
		CreatedAt:    now,
		livesBalance: DefaultLives,
	}
}

// Points returns the current points balance
func (a *Account) Points() int64 {
	return a.pointsBalance
}

// Lives returns the current lives balance
func (a *Account) Lives() int64 {
	return a.livesBalance
}

// SetBalances overwrites both balances. Used by repositories when hydrating
// rows and by admin corrections; negative values are rejected.
func (a *Account) SetBalances(points, lives int64) error {
	if points < 0 {
		return errs.NewValidationError("pointsBalance", "must not be negative")
	}
	if lives < 0 {
		return errs.NewValidationError("livesBalance", "must not be negative")
	}
	a.pointsBalance = points
	a.livesBalance = lives
	return nil
}

// CanAfford reports whether the points balance covers cost
func (a *Account) CanAfford(cost int64) bool {
	return a.pointsBalance >= cost
}

// CreditPoints adds points to the balance
func (a *Account) CreditPoints(amount int64) error {
	if amount < 0 {
		return errs.NewValidationError("amount", "credit must not be negative")
	}
	if amount > math.MaxInt64-a.pointsBalance {
		return errs.NewValidationError("amount", "credit would overflow the points balance")
	}
	a.pointsBalance += amount
	return nil
}

// DebitPoints subtracts points, failing without side effects when the balance is short
func (a *Account) DebitPoints(amount int64) error {
	if amount < 0 {
		return errs.NewValidationError("amount", "debit must not be negative")
	}
	if !a.CanAfford(amount) {
		return errs.NewInsufficientPointsError(a.ID, amount, a.pointsBalance)
	}
	a.pointsBalance -= amount
	return nil
}

// CreditLives adds lives to the balance
func (a *Account) CreditLives(amount int64) error {
	if amount < 0 {
		return errs.NewValidationError("lives", "credit must not be negative")
	}
	if amount > math.MaxInt64-a.livesBalance {
		return errs.NewValidationError("lives", "credit would overflow the lives balance")
	}
	a.livesBalance += amount
	return nil
}

// DebitLives subtracts lives, failing without side effects when the balance is short
func (a *Account) DebitLives(amount int64) error {
	if amount < 0 {
		return errs.NewValidationError("lives", "debit must not be negative")
	}
	if a.livesBalance < amount {
		return errs.NewInsufficientLivesError(a.ID, amount, a.livesBalance)
	}
	a.livesBalance -= amount
	return nil
}

// ApplyAdjustment applies a signed correction to both balances atomically:
// either both deltas apply or neither does.
func (a *Account) ApplyAdjustment(pointsDelta, livesDelta int64) error {
	// balances are never negative, so only a positive delta can overflow
	if pointsDelta > 0 && pointsDelta > math.MaxInt64-a.pointsBalance {
		return errs.NewValidationError("pointsDelta", "would overflow the points balance")
	}
	if livesDelta > 0 && livesDelta > math.MaxInt64-a.livesBalance {
		return errs.NewValidationError("livesDelta", "would overflow the lives balance")
	}
	points := a.pointsBalance + pointsDelta
	lives := a.livesBalance + livesDelta
	if points < 0 {
		return errs.NewInsufficientPointsError(a.ID, -pointsDelta, a.pointsBalance)
	}
	if lives < 0 {
		return errs.NewInsufficientLivesError(a.ID, -livesDelta, a.livesBalance)
	}
	a.pointsBalance = points
	a.livesBalance = lives
	return nil
}

// RegistrationRequest is a validated sign-up payload
type RegistrationRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email" validate:"omitempty,email"`
	Language string `json:"language" validate:"omitempty,len=2,alpha"`
}

// AccountPatch is a partial account update. Balance and role fields are
// privileged and only accepted from an admin caller.
type AccountPatch struct {
	Email         *string `json:"email" validate:"omitempty,email"`
	Language      *string `json:"language" validate:"omitempty,len=2,alpha"`
	PointsBalance *int64  `json:"pointsBalance" validate:"omitempty,gte=0"`
	LivesBalance  *int64  `json:"livesBalance" validate:"omitempty,gte=0"`
	IsAdmin       *bool   `json:"isAdmin"`
}

// IsPrivileged reports whether the patch touches admin-only fields
func (p AccountPatch) IsPrivileged() bool {
	return p.PointsBalance != nil || p.LivesBalance != nil || p.IsAdmin != nil
}

// TouchesBalances reports whether the patch must run as a settlement
func (p AccountPatch) TouchesBalances() bool {
	return p.PointsBalance != nil || p.LivesBalance != nil
}

// Apply copies the set fields onto a. Nothing changes when a balance is rejected.
func (p AccountPatch) Apply(a *Account) error {
	if p.TouchesBalances() {
		points, lives := a.pointsBalance, a.livesBalance
		if p.PointsBalance != nil {
			points = *p.PointsBalance
		}
		if p.LivesBalance != nil {
			lives = *p.LivesBalance
		}
		if err := a.SetBalances(points, lives); err != nil {
			return err
		}
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Language != nil {
		a.Language = *p.Language
	}
	if p.IsAdmin != nil {
		a.IsAdmin = *p.IsAdmin
	}
	return nil
}
