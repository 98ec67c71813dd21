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

// AlertRepository implements persistence.AlertRepository using GORM
type AlertRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAlertRepository creates a new AlertRepository instance
func NewAlertRepository(db *gorm.DB, logger coreport.Logger) *AlertRepository {
	return &AlertRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new alert
func (r *AlertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	alertModel := model.Alert{
		Message:   alert.Message,
		Recipient: alert.Recipient,
		CreatedAt: alert.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&alertModel)
	if result.Error != nil {
		r.logger.Error("Failed to create alert", map[string]any{
			"recipient": alert.Recipient,
			"error":     result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	alert.ID = alertModel.ID
	return nil
}

// ListFeed returns all broadcast alerts plus alerts addressed to the given
// username, newest first
func (r *AlertRepository) ListFeed(ctx context.Context, username string) ([]*entity.Alert, error) {
	var models []model.Alert
	result := r.db.WithContext(ctx).
		Where("recipient = '' OR recipient = ?", username).
		Order("created_at DESC, id DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list alert feed", map[string]any{
			"username": username,
			"error":    result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	alerts := make([]*entity.Alert, 0, len(models))
	for i := range models {
		alerts = append(alerts, &entity.Alert{
			ID:        models[i].ID,
			Message:   models[i].Message,
			Recipient: models[i].Recipient,
			CreatedAt: models[i].CreatedAt,
		})
	}
	return alerts, nil
}
