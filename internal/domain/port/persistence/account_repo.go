package persistence

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// AccountRepository defines methods to interact with account data
type AccountRepository interface {
	// GetByID retrieves an account by ID
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// GetByUsername retrieves an account by its unique username
	//
	// Possible errors:
	// - ErrAccountNotFound: If no account has that username
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)

	// GetForUpdate retrieves an account and locks its row until the surrounding
	// transaction ends. Must be called inside UnitOfWork.Within.
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrConcurrentUpdate: If the lock could not be taken
	GetForUpdate(ctx context.Context, id string) (*entity.Account, error)

	// Create persists a new account
	//
	// Possible errors:
	// - ErrDuplicateUsername: If the username is taken
	Create(ctx context.Context, account *entity.Account) error

	// Update writes profile fields and balances
	//
	// Possible errors:
	// - ErrAccountNotFound: If the account doesn't exist
	// - ErrValidation: If a balance would violate the non-negative constraint
	Update(ctx context.Context, account *entity.Account) error

	// ExistsByUsername is used by bootstrap seeding
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
