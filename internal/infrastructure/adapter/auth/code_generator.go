package auth

import (
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	"github.com/investapp/invest-wallet/internal/domain/port/core"
)

// UUIDCodeGenerator implements the CodeGenerator port by slicing random
// UUIDs. Uniqueness is not guaranteed here; callers check the store and
// redraw on collision.
type UUIDCodeGenerator struct{}

// NewUUIDCodeGenerator creates a new code generator
func NewUUIDCodeGenerator() core.CodeGenerator {
	return &UUIDCodeGenerator{}
}

// ReferralCode returns a fresh referral code candidate
func (g *UUIDCodeGenerator) ReferralCode() string {
	return randomCode(entity.ReferralCodeLength)
}

// WalletNumber returns a fresh 8-digit wallet number candidate
func (g *UUIDCodeGenerator) WalletNumber() string {
	return randomDigits(entity.WalletNumberLength)
}

func randomCode(length int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(raw) {
		length = len(raw)
	}
	return raw[:length]
}

// randomDigits reads a UUID as a 128-bit integer and takes the leading
// decimal digits, left-padded in the astronomically unlikely short case
func randomDigits(length int) string {
	id := uuid.New()
	digits := new(big.Int).SetBytes(id[:]).String()
	if len(digits) < length {
		digits = strings.Repeat("0", length-len(digits)) + digits
	}
	return digits[:length]
}
