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

// ReferralRepository implements persistence.ReferralRepository using GORM
type ReferralRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewReferralRepository creates a new ReferralRepository instance
func NewReferralRepository(db *gorm.DB, logger coreport.Logger) *ReferralRepository {
	return &ReferralRepository{
		db:     db,
		logger: logger,
	}
}

// Upsert creates or replaces the referral row for the account
func (r *ReferralRepository) Upsert(ctx context.Context, referral *entity.Referral) error {
	referralModel := model.Referral{
		AccountID:  referral.AccountID,
		Code:       referral.Code,
		JoinedCode: referral.JoinedCode,
		CreatedAt:  referral.CreatedAt,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "joined_code"}),
		}).
		Create(&referralModel)

	if result.Error != nil {
		r.logger.Error("Failed to upsert referral", map[string]any{
			"account_id": referral.AccountID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	referral.ID = referralModel.ID
	return nil
}

// GetByAccountID retrieves the referral row for one account
func (r *ReferralRepository) GetByAccountID(ctx context.Context, accountID uint64) (*entity.Referral, error) {
	var referralModel model.Referral
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&referralModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	return &entity.Referral{
		ID:         referralModel.ID,
		AccountID:  referralModel.AccountID,
		Code:       referralModel.Code,
		JoinedCode: referralModel.JoinedCode,
		CreatedAt:  referralModel.CreatedAt,
	}, nil
}

// CountJoins returns how many referral rows joined with the given code
func (r *ReferralRepository) CountJoins(ctx context.Context, code string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Referral{}).
		Where("joined_code = ?", code).
		Count(&count)

	if result.Error != nil {
		r.logger.Error("Failed to count referral joins", map[string]any{
			"code":  code,
			"error": result.Error.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count, nil
}
