package persistence

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// AccountRepository defines the persistence operations for accounts
type AccountRepository interface {
	// GetByID retrieves an account by primary key
	//
	// Possible errors:
	// - ErrAccountNotFound: if no account has this ID
	// - ErrDatabaseConnection: if the database cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// GetByUsername retrieves an account by its unique username
	GetByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account
	//
	// Possible errors:
	// - ErrDuplicateAccount: if the username or email is already taken
	// - ErrIntegrityConflict: if the generated referral code collides
	// - ErrDatabaseConnection: if the database cannot be reached
	Create(ctx context.Context, account *entity.Account) error

	// Update persists changes to an existing account
	Update(ctx context.Context, account *entity.Account) error

	// UsernameOrEmailTaken reports whether either identity field is in use
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)

	// ReferralCodeExists reports whether any account already owns this code.
	// Used by the registration flow to retry code generation before insert.
	ReferralCodeExists(ctx context.Context, code string) (bool, error)
}
