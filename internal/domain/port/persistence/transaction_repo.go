package persistence

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// TransactionRepository defines the persistence operations for the
// append-only transaction ledger
type TransactionRepository interface {
	// Create appends a new ledger entry. Entries are never updated or
	// deleted afterwards.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByWalletID returns all entries for a wallet, newest first
	ListByWalletID(ctx context.Context, walletID uint64) ([]*entity.Transaction, error)

	// SumByKind returns the total amount in cents across all wallets for
	// one transaction kind. Used for the admin ledger summary.
	SumByKind(ctx context.Context, kind entity.TransactionKind) (int64, error)
}
