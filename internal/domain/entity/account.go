package entity

import (
	"time"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
)

// AccountStatus represents the approval state of an account
type AccountStatus string

// Account statuses. Every account starts as pending and is moved to approved
// or declined by an administrator.
const (
	StatusPending  AccountStatus = "pending"
	StatusApproved AccountStatus = "approved"
	StatusDeclined AccountStatus = "declined"
)

// ReferralCodeLength is the fixed length of referral codes
const ReferralCodeLength = 8

// PlanTiers are the fixed investment tiers an account may select
var PlanTiers = []int{10, 100, 200, 500, 800, 1000}

// IsValidPlan reports whether v is one of the fixed plan tiers
func IsValidPlan(v int) bool {
	for _, tier := range PlanTiers {
		if v == tier {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known account status
func IsValidStatus(s string) bool {
	switch AccountStatus(s) {
	case StatusPending, StatusApproved, StatusDeclined:
		return true
	}
	return false
}

// Account is a registered user identity. Wallet state is NOT mirrored here;
// the wallet owns the balance and account-facing reads join it.
type Account struct {
	ID                 uint64
	Username           string
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Phone              string
	Status             AccountStatus
	Plan               *int   // nil when no tier selected
	ReferralCode       string // this account's own 8-character code
	JoinedReferralCode string // referrer's code captured at registration, may be empty
	IsAdmin            bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewAccount creates a pending account. The referral code is assigned later
// by the registration flow, which owns uniqueness retries.
func NewAccount(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*Account, error) {
	if username == "" {
		return nil, errs.NewValidationError("username", "must not be empty", errs.ErrValidation)
	}
	if email == "" {
		return nil, errs.NewValidationError("email", "must not be empty", errs.ErrValidation)
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "must not be empty", errs.ErrValidation)
	}

	now := timeProvider.Now()
	return &Account{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SelectPlan sets the informational plan tier
func (a *Account) SelectPlan(tier int) error {
	if !IsValidPlan(tier) {
		return errs.ErrInvalidPlan
	}
	a.Plan = &tier
	return nil
}

// CanAccessLedger reports whether this account may read wallet state.
// Only approved accounts clear the gate.
func (a *Account) CanAccessLedger() bool {
	return a.Status == StatusApproved
}

// RequireAdmin returns ErrAdminRequired unless the account carries the
// administrator capability. Elevated operations check this explicitly
// instead of threading a role flag through every call site.
func (a *Account) RequireAdmin() error {
	if a == nil || !a.IsAdmin {
		return errs.ErrAdminRequired
	}
	return nil
}

// Approve transitions a pending account to approved
func (a *Account) Approve(timeProvider coreport.TimeProvider) error {
	if a.Status != StatusPending {
		return errs.ErrInvalidStatusChange
	}
	a.Status = StatusApproved
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// Decline transitions a pending account to declined
func (a *Account) Decline(timeProvider coreport.TimeProvider) error {
	if a.Status != StatusPending {
		return errs.ErrInvalidStatusChange
	}
	a.Status = StatusDeclined
	a.UpdatedAt = timeProvider.Now()
	return nil
}
