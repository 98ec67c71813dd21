package entity

import (
	"math"
	"time"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
)

// WalletNumberLength is the fixed length of wallet numbers
const WalletNumberLength = 8

// Wallet holds the balance for exactly one account. It is the single source
// of truth: nothing mirrors the balance anywhere else.
type Wallet struct {
	ID        uint64
	AccountID uint64
	Number    string // opaque 8-digit wallet identifier
	balance   int64  // cents, kept private so every change goes through Credit/Debit
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWallet creates an empty wallet for the given account
func NewWallet(accountID uint64, number string, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if accountID == 0 {
		return nil, errs.NewValidationError("account_id", "must reference an account", errs.ErrValidation)
	}
	if len(number) != WalletNumberLength {
		return nil, errs.NewValidationError("wallet_number", "must be 8 digits", errs.ErrValidation)
	}

	now := timeProvider.Now()
	return &Wallet{
		AccountID: accountID,
		Number:    number,
		balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Balance returns the current balance in cents
func (w *Wallet) Balance() int64 {
	return w.balance
}

// DisplayBalance returns the balance as a string with 2 decimal places
func (w *Wallet) DisplayBalance() string {
	return FormatCents(w.balance)
}

// SetBalance overwrites the balance directly. Used by repositories when
// hydrating entities from stored rows.
func (w *Wallet) SetBalance(cents int64) {
	w.balance = cents
}

// CanDebit reports whether the wallet holds at least the given amount
func (w *Wallet) CanDebit(cents int64) bool {
	return w.balance >= cents
}

// Credit adds the amount to the balance.
// Refuses the credit when the new balance would not fit in int64 cents.
func (w *Wallet) Credit(cents int64, timeProvider coreport.TimeProvider) error {
	if w.balance > math.MaxInt64-cents {
		return errs.NewValidationError("amount", "credit would overflow the balance", errs.ErrValidation)
	}
	w.balance += cents
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts the amount from the balance.
// Returns ErrInsufficientBalance when the wallet does not cover it.
func (w *Wallet) Debit(cents int64, timeProvider coreport.TimeProvider) error {
	if w.balance < cents {
		return errs.ErrInsufficientBalance
	}
	w.balance -= cents
	w.UpdatedAt = timeProvider.Now()
	return nil
}
