package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func transactionEntityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		WalletID:      transaction.WalletID,
		Kind:          string(transaction.Kind),
		Amount:        transaction.Amount,
		AmountInCents: transaction.AmountInCents,
		ResultBalance: transaction.ResultBalance,
		CreatedAt:     transaction.CreatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		WalletID:      m.WalletID,
		Kind:          entity.TransactionKind(m.Kind),
		Amount:        m.Amount,
		AmountInCents: m.AmountInCents,
		ResultBalance: m.ResultBalance,
		CreatedAt:     m.CreatedAt,
	}
}

// Create appends a new ledger entry
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := transactionEntityToModel(transaction)

	result := r.db.WithContext(ctx).Create(&transactionModel)
	if result.Error != nil {
		r.logger.Error("Failed to create ledger entry", map[string]any{
			"wallet_id": transaction.WalletID,
			"kind":      string(transaction.Kind),
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transaction.ID = transactionModel.ID

	r.logger.Debug("Ledger entry created", map[string]any{
		"transaction_id": transaction.ID,
		"wallet_id":      transaction.WalletID,
		"kind":           string(transaction.Kind),
	})
	return nil
}

// ListByWalletID returns all entries for a wallet, newest first
func (r *TransactionRepository) ListByWalletID(ctx context.Context, walletID uint64) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := r.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at DESC, id DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"wallet_id": walletID,
			"error":     result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionModelToEntity(&models[i]))
	}
	return transactions, nil
}

// SumByKind returns the total amount in cents across all wallets for one kind
func (r *TransactionRepository) SumByKind(ctx context.Context, kind entity.TransactionKind) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("kind = ?", string(kind)).
		Select("COALESCE(SUM(amount_in_cents), 0)").
		Scan(&total)

	if result.Error != nil {
		r.logger.Error("Failed to sum ledger entries", map[string]any{
			"kind":  string(kind),
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return total, nil
}
