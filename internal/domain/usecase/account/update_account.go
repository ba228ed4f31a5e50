package account

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/usecase"
)

// UpdateAccount applies a partial update. Every account write goes through the
// settler so profile edits cannot overwrite a concurrent balance change.
func (u *UseCase) UpdateAccount(ctx context.Context, caller usecase.Caller, id string, patch entity.AccountPatch) (*entity.Account, error) {
	if !caller.IsAdmin && (caller.AccountID != id || patch.IsPrivileged()) {
		u.logger.Warn("Account update denied", map[string]any{
			"callerId":  caller.AccountID,
			"accountId": id,
		})
		return nil, errs.ErrPermissionDenied
	}

	if err := entity.Validate(patch); err != nil {
		return nil, err
	}

	return u.settler.Settle(ctx, id, "account_update", func(_ context.Context, account *entity.Account) error {
		return patch.Apply(account)
	})
}
