package account

import (
	"context"
	"fmt"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

// ProfileUpdate carries the editable profile fields. Empty strings mean
// "leave unchanged".
type ProfileUpdate struct {
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	JoinedReferralCode string
}

// UpdateProfile edits the account's personal information. Changing the
// joined referral code also rewrites the referral row so join counts stay
// consistent, which is why the write runs inside a unit of work.
func (u *AccountUseCase) UpdateProfile(ctx context.Context, accountID uint64, update ProfileUpdate) (*entity.Account, error) {
	if update.JoinedReferralCode != "" && len(update.JoinedReferralCode) != entity.ReferralCodeLength {
		return nil, errs.ErrInvalidReferralCode
	}

	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != "" {
		account.FirstName = update.FirstName
	}
	if update.LastName != "" {
		account.LastName = update.LastName
	}
	if update.Email != "" {
		account.Email = update.Email
	}
	if update.Phone != "" {
		account.Phone = update.Phone
	}
	joinedChanged := update.JoinedReferralCode != "" && update.JoinedReferralCode != account.JoinedReferralCode
	if joinedChanged {
		account.JoinedReferralCode = update.JoinedReferralCode
	}
	account.UpdatedAt = u.timeProvider.Now()

	if !joinedChanged {
		if err := u.accountRepo.Update(ctx, account); err != nil {
			return nil, err
		}
		return account, nil
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	if err := u.uow.GetAccountRepository(txCtx).Update(txCtx, account); err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	referral := &entity.Referral{
		AccountID:  account.ID,
		Code:       account.ReferralCode,
		JoinedCode: account.JoinedReferralCode,
		CreatedAt:  u.timeProvider.Now(),
	}
	if err := u.uow.GetReferralRepository(txCtx).Upsert(txCtx, referral); err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	return account, nil
}

// ChangePassword replaces the credential after checking the old password
// and the confirmation of the new one
func (u *AccountUseCase) ChangePassword(ctx context.Context, accountID uint64, oldPassword, newPassword, confirm string) error {
	if newPassword == "" {
		return errs.NewValidationError("new_password", "must not be empty", errs.ErrValidation)
	}
	if newPassword != confirm {
		return errs.ErrPasswordMismatch
	}

	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := u.hasher.Compare(account.PasswordHash, oldPassword); err != nil {
		return errs.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	account.PasswordHash = hash
	account.UpdatedAt = u.timeProvider.Now()

	if err := u.accountRepo.Update(ctx, account); err != nil {
		return err
	}

	u.logger.Info("Password changed", map[string]any{
		"account_id": accountID,
	})
	return nil
}
