package entity

import (
	"time"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
)

// Alert is a read-only notification. An empty Recipient means the alert is
// broadcast to everyone; otherwise it targets one account by username.
type Alert struct {
	ID        uint64
	Message   string
	Recipient string
	CreatedAt time.Time
}

// NewAlert creates an alert with a server-assigned timestamp
func NewAlert(message, recipient string, timeProvider coreport.TimeProvider) (*Alert, error) {
	if message == "" {
		return nil, errs.NewValidationError("message", "must not be empty", errs.ErrValidation)
	}
	return &Alert{
		Message:   message,
		Recipient: recipient,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// IsBroadcast reports whether the alert is visible to all accounts
func (a *Alert) IsBroadcast() bool {
	return a.Recipient == ""
}
