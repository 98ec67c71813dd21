package account

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
)

// Approve moves a pending account to approved. Administrator capability is
// checked explicitly on the acting account.
func (u *AccountUseCase) Approve(ctx context.Context, actor *entity.Account, accountID uint64) (*entity.Account, error) {
	return u.review(ctx, actor, accountID, func(a *entity.Account, tp coreport.TimeProvider) error {
		return a.Approve(tp)
	})
}

// Decline moves a pending account to declined
func (u *AccountUseCase) Decline(ctx context.Context, actor *entity.Account, accountID uint64) (*entity.Account, error) {
	return u.review(ctx, actor, accountID, func(a *entity.Account, tp coreport.TimeProvider) error {
		return a.Decline(tp)
	})
}

func (u *AccountUseCase) review(
	ctx context.Context,
	actor *entity.Account,
	accountID uint64,
	transition func(*entity.Account, coreport.TimeProvider) error,
) (*entity.Account, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}

	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := transition(account, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	u.logger.Info("Account status changed", map[string]any{
		"account_id": account.ID,
		"status":     string(account.Status),
		"actor_id":   actor.ID,
	})

	return account, nil
}
