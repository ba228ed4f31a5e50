package store

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
)

// Purchase settles one purchase. Point-paid purchases deduct the cost and, for
// extra lives, credit the lives in the same settlement as the transaction row.
// Point purchases only record a pending transaction.
func (u *UseCase) Purchase(ctx context.Context, accountID string, purchase entity.Purchase) (*entity.StoreTransaction, error) {
	if purchase == nil {
		return nil, errs.NewValidationError("type", "must be one of external_currency_redemption extra_lives point_purchase")
	}
	if err := entity.Validate(purchase); err != nil {
		return nil, err
	}

	txn := entity.NewStoreTransaction(u.ids.NewID(), accountID, purchase, u.timeProvider.Now())

	_, err := u.settler.Settle(ctx, accountID, "store_"+string(txn.Type), func(txCtx context.Context, account *entity.Account) error {
		if txn.Type.DeductsPoints() {
			if err := account.DebitPoints(txn.Cost); err != nil {
				return err
			}
		}
		if txn.Type == entity.TransactionTypeExtraLives {
			if err := account.CreditLives(txn.TierAmount); err != nil {
				return err
			}
		}
		return u.uow.GetStoreTransactionRepository(txCtx).Create(txCtx, txn)
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}
