package persistence

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// WalletRepository defines the persistence operations for wallets
type WalletRepository interface {
	// GetByAccountID retrieves the single wallet owned by an account
	//
	// Possible errors:
	// - ErrWalletNotFound: if the account has no wallet
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByAccountID(ctx context.Context, accountID uint64) (*entity.Wallet, error)

	// GetByNumber retrieves a wallet by its opaque wallet number
	GetByNumber(ctx context.Context, number string) (*entity.Wallet, error)

	// GetByNumberForUpdate retrieves a wallet by number while holding an
	// exclusive row lock. Only meaningful inside a unit of work; the lock is
	// released when the unit of work commits or rolls back.
	GetByNumberForUpdate(ctx context.Context, number string) (*entity.Wallet, error)

	// Create persists a new wallet
	//
	// Possible errors:
	// - ErrIntegrityConflict: if the wallet number collides
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, wallet *entity.Wallet) error

	// Update persists the wallet's balance
	Update(ctx context.Context, wallet *entity.Wallet) error

	// NumberExists reports whether a wallet number is already in use.
	// Used by provisioning to retry number generation before insert.
	NumberExists(ctx context.Context, number string) (bool, error)
}
