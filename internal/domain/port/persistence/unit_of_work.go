package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across multiple repositories so that they
// commit or roll back as one. Registration (account + wallet + referral) and
// transaction application (wallet balance + ledger entry) both run under it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetAccountRepository returns an account repository bound to the current transaction
	GetAccountRepository(ctx context.Context) AccountRepository

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetReferralRepository returns a referral repository bound to the current transaction
	GetReferralRepository(ctx context.Context) ReferralRepository
}
