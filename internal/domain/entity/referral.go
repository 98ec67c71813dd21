package entity

import "time"

// Referral captures, per account, its own referral code and the code it
// joined with. The join count is always derived by counting rows whose
// JoinedCode equals a given account's Code; it is never cached.
type Referral struct {
	ID         uint64
	AccountID  uint64
	Code       string // the account's own code
	JoinedCode string // the referrer's code, empty when none was used
	CreatedAt  time.Time
}
