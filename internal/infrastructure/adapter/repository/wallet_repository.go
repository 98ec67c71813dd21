package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/model"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a wallet model to an entity
func walletModelToEntity(m *model.Wallet) *entity.Wallet {
	wallet := &entity.Wallet{
		ID:        m.ID,
		AccountID: m.AccountID,
		Number:    m.Number,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	wallet.SetBalance(m.Balance)
	return wallet
}

// handleDatabaseError standardizes database error handling
func (r *WalletRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrWalletNotFound
	}
	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrIntegrityConflict
	}
	if r.errorClassifier.IsLockError(err) || r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrIntegrityConflict, err.Error())
	}
	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
}

// GetByAccountID retrieves the single wallet owned by an account
func (r *WalletRepository) GetByAccountID(ctx context.Context, accountID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet by account", result.Error)
	}
	return walletModelToEntity(&walletModel), nil
}

// GetByNumber retrieves a wallet by its wallet number
func (r *WalletRepository) GetByNumber(ctx context.Context, number string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).Where("number = ?", number).First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet by number", result.Error)
	}
	return walletModelToEntity(&walletModel), nil
}

// GetByNumberForUpdate retrieves a wallet by number while holding an
// exclusive row lock. The lock lives until the surrounding transaction
// commits or rolls back, so concurrent balance changes on the same wallet
// serialize here.
func (r *WalletRepository) GetByNumberForUpdate(ctx context.Context, number string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("number = ?", number).
		First(&walletModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking wallet", result.Error)
	}

	r.logger.Debug("Wallet row locked", map[string]any{
		"wallet_number": number,
	})
	return walletModelToEntity(&walletModel), nil
}

// Create persists a new wallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		AccountID: wallet.AccountID,
		Number:    wallet.Number,
		Balance:   wallet.Balance(),
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&walletModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating wallet", result.Error)
	}

	wallet.ID = walletModel.ID

	r.logger.Info("Wallet created", map[string]any{
		"wallet_id":     wallet.ID,
		"wallet_number": wallet.Number,
		"account_id":    wallet.AccountID,
	})
	return nil
}

// Update persists the wallet's balance
func (r *WalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]interface{}{
			"balance":    wallet.Balance(),
			"updated_at": wallet.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating wallet", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrWalletNotFound
	}
	return nil
}

// NumberExists reports whether a wallet number is already in use
func (r *WalletRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("number = ?", number).
		Count(&count)

	if result.Error != nil {
		return false, r.handleDatabaseError("checking wallet number", result.Error)
	}
	return count > 0, nil
}
