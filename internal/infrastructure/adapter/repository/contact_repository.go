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

// ContactMessageRepository implements persistence.ContactMessageRepository using GORM
type ContactMessageRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewContactMessageRepository creates a new ContactMessageRepository instance
func NewContactMessageRepository(db *gorm.DB, logger coreport.Logger) *ContactMessageRepository {
	return &ContactMessageRepository{
		db:     db,
		logger: logger,
	}
}

func contactModelToEntity(m *model.ContactMessage) *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:        m.ID,
		AccountID: m.AccountID,
		Message:   m.Message,
		Response:  m.Response,
		SentAt:    m.SentAt,
	}
}

// Create stores a new contact message
func (r *ContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageModel := model.ContactMessage{
		AccountID: message.AccountID,
		Message:   message.Message,
		Response:  message.Response,
		SentAt:    message.SentAt,
	}

	result := r.db.WithContext(ctx).Create(&messageModel)
	if result.Error != nil {
		r.logger.Error("Failed to create contact message", map[string]any{
			"account_id": message.AccountID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	message.ID = messageModel.ID
	return nil
}

// GetByID retrieves one contact message
func (r *ContactMessageRepository) GetByID(ctx context.Context, id uint64) (*entity.ContactMessage, error) {
	var messageModel model.ContactMessage
	result := r.db.WithContext(ctx).First(&messageModel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return contactModelToEntity(&messageModel), nil
}

// ListByAccountID returns all messages sent by an account, newest first
func (r *ContactMessageRepository) ListByAccountID(ctx context.Context, accountID uint64) ([]*entity.ContactMessage, error) {
	var models []model.ContactMessage
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("sent_at DESC, id DESC").
		Find(&models)

	if result.Error != nil {
		r.logger.Error("Failed to list contact messages", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	messages := make([]*entity.ContactMessage, 0, len(models))
	for i := range models {
		messages = append(messages, contactModelToEntity(&models[i]))
	}
	return messages, nil
}

// Update persists an administrator response
func (r *ContactMessageRepository) Update(ctx context.Context, message *entity.ContactMessage) error {
	result := r.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", message.ID).
		Updates(map[string]interface{}{
			"response": message.Response,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
