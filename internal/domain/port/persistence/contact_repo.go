package persistence

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// ContactMessageRepository defines the persistence operations for support messages
type ContactMessageRepository interface {
	// Create stores a new contact message
	Create(ctx context.Context, message *entity.ContactMessage) error

	// GetByID retrieves one contact message
	//
	// Possible errors:
	// - ErrNotFound: if no message has this ID
	GetByID(ctx context.Context, id uint64) (*entity.ContactMessage, error)

	// ListByAccountID returns all messages sent by an account, newest first
	ListByAccountID(ctx context.Context, accountID uint64) ([]*entity.ContactMessage, error)

	// Update persists an administrator response
	Update(ctx context.Context, message *entity.ContactMessage) error
}
