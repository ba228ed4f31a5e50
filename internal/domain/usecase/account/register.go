package account

import (
	"context"
	"strings"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// Register creates an account with default balances
func (u *UseCase) Register(ctx context.Context, req entity.RegistrationRequest) (*entity.Account, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))

	if err := entity.Validate(req); err != nil {
		return nil, err
	}

	return u.create(ctx, req, false)
}

// EnsureAdmin creates an admin account unless the username already exists.
// The bool result reports whether an account was created.
func (u *UseCase) EnsureAdmin(ctx context.Context, username, password string) (*entity.Account, bool, error) {
	req := entity.RegistrationRequest{Username: strings.TrimSpace(username), Password: password}
	if err := entity.Validate(req); err != nil {
		return nil, false, err
	}

	exists, err := u.uow.GetAccountRepository(ctx).ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, false, err
	}
	if exists {
		return nil, false, nil
	}

	account, err := u.create(ctx, req, true)
	if err != nil {
		return nil, false, err
	}
	return account, true, nil
}

func (u *UseCase) create(ctx context.Context, req entity.RegistrationRequest, isAdmin bool) (*entity.Account, error) {
	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	account := entity.NewAccount(u.ids.NewID(), req.Username, req.Email, hash, req.Language, u.timeProvider.Now())
	account.IsAdmin = isAdmin

	if err := u.uow.GetAccountRepository(ctx).Create(ctx, account); err != nil {
		if !errs.IsDuplicateKeyError(err) {
			u.logger.Error("Failed to create account", map[string]any{
				"username": req.Username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Account registered", map[string]any{
		"accountId": account.ID,
		"username":  account.Username,
		"isAdmin":   account.IsAdmin,
	})

	return account, nil
}
