package referral

import (
	"context"

	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// ReferralUseCase exposes the derived referral view
type ReferralUseCase struct {
	referralRepo persistence.ReferralRepository
	logger       coreport.Logger
}

// NewReferralUseCase creates a new ReferralUseCase
func NewReferralUseCase(referralRepo persistence.ReferralRepository, logger coreport.Logger) *ReferralUseCase {
	return &ReferralUseCase{
		referralRepo: referralRepo,
		logger:       logger,
	}
}

// Overview is the referral projection for one account: its own code, the
// code it joined with, and how many accounts joined with its code
type Overview struct {
	Code       string
	JoinedWith string
	Joins      int64
}

// CountJoins returns how many accounts registered with the given code.
// A code nobody joined with yields 0, never an error. The count is always
// recomputed; nothing caches it.
func (u *ReferralUseCase) CountJoins(ctx context.Context, code string) (int64, error) {
	return u.referralRepo.CountJoins(ctx, code)
}

// GetOverview builds the referral overview for an account
func (u *ReferralUseCase) GetOverview(ctx context.Context, accountID uint64) (*Overview, error) {
	referral, err := u.referralRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	joins, err := u.referralRepo.CountJoins(ctx, referral.Code)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Code:       referral.Code,
		JoinedWith: referral.JoinedCode,
		Joins:      joins,
	}, nil
}
