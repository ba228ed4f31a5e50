package store

import (
	"context"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
)

// UpdateStatus moves a pending transaction to completed or cancelled.
// Completing a point purchase does not credit points; admins do that with a balance adjustment.
func (u *UseCase) UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) (*entity.StoreTransaction, error) {
	var txn *entity.StoreTransaction
	err := u.uow.Within(ctx, func(txCtx context.Context) error {
		var err error
		txn, err = u.transition(txCtx, id, status)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// transition runs inside the caller's transaction so it can be combined with other writes
func (u *UseCase) transition(txCtx context.Context, id string, status entity.TransactionStatus) (*entity.StoreTransaction, error) {
	transactions := u.uow.GetStoreTransactionRepository(txCtx)

	txn, err := transactions.GetForUpdate(txCtx, id)
	if err != nil {
		return nil, err
	}
	previous := txn.Status
	if err := txn.TransitionTo(status); err != nil {
		return nil, err
	}
	if err := transactions.UpdateStatus(txCtx, txn); err != nil {
		return nil, err
	}

	u.logger.Info("Store transaction status changed", map[string]any{
		"transactionId": txn.ID,
		"accountId":     txn.AccountID,
		"from":          previous,
		"to":            txn.Status,
	})
	return txn, nil
}

// TransitionWithin changes the status using the transaction already open in txCtx
func (u *UseCase) TransitionWithin(txCtx context.Context, id string, status entity.TransactionStatus) (*entity.StoreTransaction, error) {
	return u.transition(txCtx, id, status)
}
