package contact

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// ContactUseCase carries support messages between accounts and administrators
type ContactUseCase struct {
	contactRepo  persistence.ContactMessageRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewContactUseCase creates a new ContactUseCase
func NewContactUseCase(contactRepo persistence.ContactMessageRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo:  contactRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Send stores a new support message from an account
func (u *ContactUseCase) Send(ctx context.Context, accountID uint64, message string) (*entity.ContactMessage, error) {
	m, err := entity.NewContactMessage(accountID, message, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := u.contactRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// List returns the messages sent by one account, newest first
func (u *ContactUseCase) List(ctx context.Context, accountID uint64) ([]*entity.ContactMessage, error) {
	return u.contactRepo.ListByAccountID(ctx, accountID)
}

// Respond records an administrator response on a message
func (u *ContactUseCase) Respond(ctx context.Context, actor *entity.Account, messageID uint64, response string) (*entity.ContactMessage, error) {
	if err := actor.RequireAdmin(); err != nil {
		return nil, err
	}
	if response == "" {
		return nil, errs.NewValidationError("response", "must not be empty", errs.ErrValidation)
	}

	m, err := u.contactRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	m.Response = response
	if err := u.contactRepo.Update(ctx, m); err != nil {
		return nil, err
	}

	u.logger.Info("Contact message answered", map[string]any{
		"message_id": messageID,
		"actor_id":   actor.ID,
	})
	return m, nil
}
