package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/model"
)

// AccountRepository implements persistence.AccountRepository using GORM
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func accountModelToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Phone:              m.Phone,
		Status:             entity.AccountStatus(m.Status),
		Plan:               m.Plan,
		ReferralCode:       m.ReferralCode,
		JoinedReferralCode: m.JoinedReferralCode,
		IsAdmin:            m.IsAdmin,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// entityToModel converts an account entity to a database model
func accountEntityToModel(account *entity.Account) model.Account {
	return model.Account{
		ID:                 account.ID,
		Username:           account.Username,
		Email:              account.Email,
		PasswordHash:       account.PasswordHash,
		FirstName:          account.FirstName,
		LastName:           account.LastName,
		Phone:              account.Phone,
		Status:             string(account.Status),
		Plan:               account.Plan,
		ReferralCode:       account.ReferralCode,
		JoinedReferralCode: account.JoinedReferralCode,
		IsAdmin:            account.IsAdmin,
		CreatedAt:          account.CreatedAt,
		UpdatedAt:          account.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrAccountNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateAccount
	}
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrIntegrityConflict, err.Error())
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByID retrieves an account by primary key
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error)
	}
	return accountModelToEntity(&accountModel), nil
}

// GetByUsername retrieves an account by its unique username
func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&accountModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account by username", result.Error)
	}
	return accountModelToEntity(&accountModel), nil
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := accountEntityToModel(account)

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate account insert", map[string]any{
				"username": account.Username,
			})
			if r.isReferralCodeConflict(result.Error) {
				return errs.ErrIntegrityConflict
			}
			return errs.ErrDuplicateAccount
		}
		return r.handleDatabaseError("creating account", result.Error)
	}

	account.ID = accountModel.ID

	r.logger.Info("Account created", map[string]any{
		"account_id": account.ID,
		"username":   account.Username,
	})
	return nil
}

// isReferralCodeConflict distinguishes a referral code unique violation from
// an identity one, so the caller can retry code generation instead of
// reporting a taken username
func (r *AccountRepository) isReferralCodeConflict(err error) bool {
	return err != nil &&
		(containsAny(err.Error(), "referral_code", "idx_accounts_referral_code"))
}

// Update persists changes to an existing account
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"email":                account.Email,
			"password_hash":        account.PasswordHash,
			"first_name":           account.FirstName,
			"last_name":            account.LastName,
			"phone":                account.Phone,
			"status":               string(account.Status),
			"plan":                 account.Plan,
			"joined_referral_code": account.JoinedReferralCode,
			"updated_at":           account.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating account", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrAccountNotFound
	}
	return nil
}

// UsernameOrEmailTaken reports whether either identity field is in use
func (r *AccountRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking identity", result.Error)
	}
	return count > 0, nil
}

// ReferralCodeExists reports whether any account already owns this code
func (r *AccountRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Account{}).
		Where("referral_code = ?", code).
		Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking referral code", result.Error)
	}
	return count > 0, nil
}
