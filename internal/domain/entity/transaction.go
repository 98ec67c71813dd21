package entity

import (
	"fmt"
	"time"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
)

// TransactionKind distinguishes deposits from withdrawals
type TransactionKind string

// Transaction kinds
const (
	KindDeposit  TransactionKind = "deposit"
	KindWithdraw TransactionKind = "withdraw"
)

// IsValidKind reports whether kind is a known transaction kind
func IsValidKind(kind string) bool {
	return kind == string(KindDeposit) || kind == string(KindWithdraw)
}

// Transaction is an immutable ledger entry against one wallet. Rows are
// append-only: nothing updates or deletes them after creation.
type Transaction struct {
	ID            uint64
	WalletID      uint64
	Kind          TransactionKind
	Amount        string // as submitted, 2 decimal places
	AmountInCents int64
	ResultBalance string // wallet balance right after this entry
	CreatedAt     time.Time
}

// NewTransaction validates the kind and amount and builds a ledger entry
// with a server-assigned timestamp.
func NewTransaction(walletID uint64, kind, amount string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if walletID == 0 {
		return nil, errs.NewValidationError("wallet_id", "must reference a wallet", errs.ErrValidation)
	}
	if !IsValidKind(kind) {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidTransactionKind, kind)
	}

	cents, err := ParsePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		WalletID:      walletID,
		Kind:          TransactionKind(kind),
		Amount:        FormatCents(cents),
		AmountInCents: cents,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// IsCredit reports whether this entry increases the wallet balance
func (t *Transaction) IsCredit() bool {
	return t.Kind == KindDeposit
}

// Delta returns the signed balance change in cents
func (t *Transaction) Delta() int64 {
	if t.IsCredit() {
		return t.AmountInCents
	}
	return -t.AmountInCents
}
