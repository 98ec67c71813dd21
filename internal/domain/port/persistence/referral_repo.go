package persistence

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// ReferralRepository defines the persistence operations for referral rows
type ReferralRepository interface {
	// Upsert creates or replaces the referral row for the account
	Upsert(ctx context.Context, referral *entity.Referral) error

	// GetByAccountID retrieves the referral row for one account
	//
	// Possible errors:
	// - ErrNotFound: if the account has no referral row
	GetByAccountID(ctx context.Context, accountID uint64) (*entity.Referral, error)

	// CountJoins returns how many referral rows joined with the given code.
	// Zero for a code nobody joined with, including unknown codes.
	CountJoins(ctx context.Context, code string) (int64, error)
}
