package usecase

import (
	"context"
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// Caller is the authenticated account behind a request
type Caller struct {
	AccountID string
	IsAdmin   bool
}

// AuthResult is returned by a successful authentication
type AuthResult struct {
	Account   *entity.Account
	Token     string
	ExpiresAt time.Time
}

// AccountUseCase defines the Account Store operations
type AccountUseCase interface {
	// Register creates an account with default balances
	//
	// Possible errors:
	// - ErrValidation: If a field is malformed
	// - ErrDuplicateUsername: If the username is taken
	Register(ctx context.Context, req entity.RegistrationRequest) (*entity.Account, error)

	// Authenticate checks credentials and issues an access token
	//
	// Possible errors:
	// - ErrInvalidCredentials: If the username is unknown or the password is wrong
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)

	// GetAccount returns an account by ID
	GetAccount(ctx context.Context, id string) (*entity.Account, error)

	// ResolveCaller turns a bearer token into a Caller
	//
	// Possible errors:
	// - ErrUnauthenticated: If the token is invalid, expired or its account is gone
	ResolveCaller(ctx context.Context, token string) (*Caller, error)

	// UpdateAccount applies a partial update. Privileged fields require an admin caller
	// and balance edits run as a settlement.
	//
	// Possible errors:
	// - ErrPermissionDenied: If a non-admin touches privileged fields or another account
	// - ErrAccountNotFound
	// - ErrValidation
	UpdateAccount(ctx context.Context, caller Caller, id string, patch entity.AccountPatch) (*entity.Account, error)

	// EnsureAdmin creates an admin account unless the username already exists
	EnsureAdmin(ctx context.Context, username, password string) (*entity.Account, bool, error)
}
