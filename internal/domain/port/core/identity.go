package core

// PasswordHasher abstracts credential hashing so usecases never see bcrypt
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password
	Hash(plain string) (string, error)
	// Compare checks a plaintext password against a stored hash
	Compare(hash, plain string) error
}

// CodeGenerator produces the opaque identifiers handed out at provisioning
// time. Uniqueness is NOT guaranteed by the generator; callers re-draw on
// collision with a bounded retry count.
type CodeGenerator interface {
	// ReferralCode returns a fresh 8-character referral code
	ReferralCode() string
	// WalletNumber returns a fresh 8-digit wallet number
	WalletNumber() string
}

// TokenIssuer mints auth tokens for logged-in accounts
type TokenIssuer interface {
	Issue(accountID uint64, isAdmin bool) (string, error)
}
