package account

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

// GetByID loads one account
func (u *AccountUseCase) GetByID(ctx context.Context, accountID uint64) (*entity.Account, error) {
	return u.accountRepo.GetByID(ctx, accountID)
}

// EnsureLedgerAccess enforces the approval gate on every ledger-reading
// entry point. Administrators pass regardless of status; everyone else
// needs an approved account.
func EnsureLedgerAccess(account *entity.Account) error {
	if account == nil {
		return errs.ErrAccountNotFound
	}
	if account.IsAdmin {
		return nil
	}
	switch account.Status {
	case entity.StatusApproved:
		return nil
	case entity.StatusDeclined:
		return errs.ErrAccountDeclined
	default:
		return errs.ErrAccountPending
	}
}

// AuthorizeLedger loads the account and applies the approval gate in one step
func (u *AccountUseCase) AuthorizeLedger(ctx context.Context, accountID uint64) (*entity.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := EnsureLedgerAccess(account); err != nil {
		return nil, err
	}
	return account, nil
}
