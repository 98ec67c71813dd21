package wallet

import (
	"context"
	"fmt"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

// ApplyTransaction is the sole mutator of wallet balances. It validates the
// request, takes an exclusive row lock on the wallet, applies the balance
// change and appends the ledger entry inside one unit of work, so
// either both writes commit or neither does.
//
// Concurrent calls against the same wallet serialize on the row lock; the
// read-modify-write sequence never interleaves.
func (u *WalletUseCase) ApplyTransaction(ctx context.Context, walletNumber, kind, amount string) (*entity.Transaction, error) {
	if !entity.IsValidKind(kind) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}
	if _, err := entity.ParsePositiveAmount(amount); err != nil {
		return nil, err
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := u.applyLocked(txCtx, walletNumber, kind, amount)
	if err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback failed after transaction error", map[string]any{
				"wallet_number": walletNumber,
				"error":         rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("Transaction applied", map[string]any{
		"wallet_number":  walletNumber,
		"kind":           kind,
		"amount":         txn.Amount,
		"result_balance": txn.ResultBalance,
	})

	return txn, nil
}

// applyLocked performs the read-modify-write under the wallet's row lock
func (u *WalletUseCase) applyLocked(txCtx context.Context, walletNumber, kind, amount string) (*entity.Transaction, error) {
	wallets := u.uow.GetWalletRepository(txCtx)
	transactions := u.uow.GetTransactionRepository(txCtx)

	wallet, err := wallets.GetByNumberForUpdate(txCtx, walletNumber)
	if err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(wallet.ID, kind, amount, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if txn.IsCredit() {
		if err := wallet.Credit(txn.AmountInCents, u.timeProvider); err != nil {
			return nil, err
		}
	} else {
		if err := wallet.Debit(txn.AmountInCents, u.timeProvider); err != nil {
			return nil, errs.NewInsufficientBalanceError(wallet.Number, txn.Amount, wallet.DisplayBalance())
		}
	}
	txn.ResultBalance = wallet.DisplayBalance()

	if err := wallets.Update(txCtx, wallet); err != nil {
		return nil, err
	}
	if err := transactions.Create(txCtx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}
