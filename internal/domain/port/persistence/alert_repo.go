package persistence

import (
	"context"

	"github.com/investapp/invest-wallet/internal/domain/entity"
)

// AlertRepository defines the persistence operations for the alert feed
type AlertRepository interface {
	// Create stores a new alert
	Create(ctx context.Context, alert *entity.Alert) error

	// ListFeed returns all broadcast alerts plus alerts addressed to the
	// given username, newest first
	ListFeed(ctx context.Context, username string) ([]*entity.Alert, error)
}
