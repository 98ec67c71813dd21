package account

import (
	"context"
	"fmt"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// RegisterRequest carries the fields submitted at registration
type RegisterRequest struct {
	Username           string
	Email              string
	Password           string
	PasswordConfirm    string
	FirstName          string
	LastName           string
	Phone              string
	Plan               *int
	JoinedReferralCode string
}

// Register provisions a new pending account together with its wallet and
// referral row. All three writes commit or roll back as one unit of work;
// a failed step leaves no partial account behind.
func (u *AccountUseCase) Register(ctx context.Context, req RegisterRequest) (*entity.Account, error) {
	if err := u.validateRegistration(req); err != nil {
		return nil, err
	}

	taken, err := u.accountRepo.UsernameOrEmailTaken(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrDuplicateAccount
	}

	passwordHash, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	account, err := entity.NewAccount(req.Username, req.Email, passwordHash, u.timeProvider)
	if err != nil {
		return nil, err
	}
	account.FirstName = req.FirstName
	account.LastName = req.LastName
	account.Phone = req.Phone
	account.JoinedReferralCode = req.JoinedReferralCode
	if req.Plan != nil {
		if err := account.SelectPlan(*req.Plan); err != nil {
			return nil, err
		}
	}

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	created, err := u.provision(txCtx, account)
	if err != nil {
		if rbErr := u.uow.Rollback(txCtx); rbErr != nil {
			u.logger.Error("Rollback failed after registration error", map[string]any{
				"username": req.Username,
				"error":    rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	u.logger.Info("Account registered", map[string]any{
		"account_id":    created.ID,
		"username":      created.Username,
		"referral_code": created.ReferralCode,
		"joined_with":   created.JoinedReferralCode,
	})

	return created, nil
}

// provision runs the three registration writes inside the unit of work:
// account row, wallet row, referral row.
func (u *AccountUseCase) provision(txCtx context.Context, account *entity.Account) (*entity.Account, error) {
	accounts := u.uow.GetAccountRepository(txCtx)
	wallets := u.uow.GetWalletRepository(txCtx)
	referrals := u.uow.GetReferralRepository(txCtx)

	code, err := u.uniqueReferralCode(txCtx, accounts)
	if err != nil {
		return nil, errs.NewProvisioningError("referral_code", account.Username, err)
	}
	account.ReferralCode = code

	if err := accounts.Create(txCtx, account); err != nil {
		return nil, err
	}

	number, err := u.uniqueWalletNumber(txCtx, wallets)
	if err != nil {
		return nil, errs.NewProvisioningError("wallet_number", account.Username, err)
	}

	wallet, err := entity.NewWallet(account.ID, number, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := wallets.Create(txCtx, wallet); err != nil {
		return nil, err
	}

	referral := &entity.Referral{
		AccountID:  account.ID,
		Code:       account.ReferralCode,
		JoinedCode: account.JoinedReferralCode,
		CreatedAt:  u.timeProvider.Now(),
	}
	if err := referrals.Upsert(txCtx, referral); err != nil {
		return nil, err
	}

	return account, nil
}

// uniqueReferralCode draws codes until one is free, bounded by codeAttempts
func (u *AccountUseCase) uniqueReferralCode(ctx context.Context, accounts persistence.AccountRepository) (string, error) {
	for attempt := 0; attempt < u.codeAttempts; attempt++ {
		code := u.codes.ReferralCode()
		exists, err := accounts.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		u.logger.Warn("Referral code collision, retrying", map[string]any{
			"attempt": attempt + 1,
		})
	}
	return "", errs.ErrIntegrityConflict
}

// uniqueWalletNumber draws wallet numbers until one is free, bounded by codeAttempts
func (u *AccountUseCase) uniqueWalletNumber(ctx context.Context, wallets persistence.WalletRepository) (string, error) {
	for attempt := 0; attempt < u.codeAttempts; attempt++ {
		number := u.codes.WalletNumber()
		exists, err := wallets.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
		u.logger.Warn("Wallet number collision, retrying", map[string]any{
			"attempt": attempt + 1,
		})
	}
	return "", errs.ErrIntegrityConflict
}

func (u *AccountUseCase) validateRegistration(req RegisterRequest) error {
	if req.Username == "" {
		return errs.NewValidationError("username", "must not be empty", errs.ErrValidation)
	}
	if req.Email == "" {
		return errs.NewValidationError("email", "must not be empty", errs.ErrValidation)
	}
	if req.Password == "" {
		return errs.NewValidationError("password", "must not be empty", errs.ErrValidation)
	}
	if req.Password != req.PasswordConfirm {
		return errs.ErrPasswordMismatch
	}
	if req.JoinedReferralCode != "" && len(req.JoinedReferralCode) != entity.ReferralCodeLength {
		return errs.ErrInvalidReferralCode
	}
	if req.Plan != nil && !entity.IsValidPlan(*req.Plan) {
		return errs.ErrInvalidPlan
	}
	return nil
}
