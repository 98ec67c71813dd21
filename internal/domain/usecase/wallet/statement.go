package wallet

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// Statement is the dashboard projection of one wallet: current balance plus
// the full transaction history, newest first
type Statement struct {
	WalletNumber string
	Balance      string
	Transactions []*entity.Transaction
}

// GetStatement reads the wallet owned by an account together with its history.
// An empty history is a valid statement, not an error.
func (u *WalletUseCase) GetStatement(ctx context.Context, accountID uint64) (*Statement, error) {
	wallet, err := u.walletRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	history, err := u.transactionRepo.ListByWalletID(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}

	return &Statement{
		WalletNumber: wallet.Number,
		Balance:      wallet.DisplayBalance(),
		Transactions: history,
	}, nil
}

// LedgerSummary aggregates deposits and withdrawals across all wallets
type LedgerSummary struct {
	TotalDeposited string
	TotalWithdrawn string
}

// Summarize computes the ledger totals for the admin dashboard. The acting
// account needs the administrator capability.
func (u *WalletUseCase) Summarize(ctx context.Context, actor *entity.Account) (*LedgerSummary, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	deposited, err := u.transactionRepo.SumByKind(ctx, entity.KindDeposit)
	if err != nil {
		return nil, err
	}
	withdrawn, err := u.transactionRepo.SumByKind(ctx, entity.KindWithdraw)
	if err != nil {
		return nil, err
	}

	return &LedgerSummary{
		TotalDeposited: entity.FormatCents(deposited),
		TotalWithdrawn: entity.FormatCents(withdrawn),
	}, nil
}
