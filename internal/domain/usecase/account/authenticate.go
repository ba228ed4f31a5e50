package account

import (
	"context"
	"strings"

	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
)

// Authenticate checks credentials and issues an access token.
// Unknown usernames and wrong passwords fail the same way.
func (u *UseCase) Authenticate(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	account, err := u.uow.GetAccountRepository(ctx).GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		u.logger.Warn("Rejected login", map[string]any{
			"accountId": account.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokens.Issue(account.ID)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"accountId": account.ID,
			"error":     err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &usecase.AuthResult{Account: account, Token: token, ExpiresAt: expiresAt}, nil
}

// ResolveCaller turns a bearer token into a Caller
func (u *UseCase) ResolveCaller(ctx context.Context, token string) (*usecase.Caller, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}

	account, err := u.uow.GetAccountRepository(ctx).GetByID(ctx, claims.AccountID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrUnauthenticated
		}
		return nil, err
	}

	return &usecase.Caller{AccountID: account.ID, IsAdmin: account.IsAdmin}, nil
}
