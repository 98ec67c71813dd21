package entity

import (
	"time"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
)

// NoResponseYet marks a contact message the administrators have not answered
const NoResponseYet = "not responded yet"

// ContactMessage is a support message from an account, answered out of band
// by an administrator.
type ContactMessage struct {
	ID        uint64
	AccountID uint64
	Message   string
	Response  string
	SentAt    time.Time
}

// NewContactMessage creates an unanswered contact message
func NewContactMessage(accountID uint64, message string, timeProvider coreport.TimeProvider) (*ContactMessage, error) {
	if accountID == 0 {
		return nil, errs.NewValidationError("account_id", "must reference an account", errs.ErrValidation)
	}
	if message == "" {
		return nil, errs.NewValidationError("message", "must not be empty", errs.ErrValidation)
	}
	return &ContactMessage{
		AccountID: accountID,
		Message:   message,
		Response:  NoResponseYet,
		SentAt:    timeProvider.Now(),
	}, nil
}

// Answered reports whether an administrator has responded
func (m *ContactMessage) Answered() bool {
	return m.Response != "" && m.Response != NoResponseYet
}
