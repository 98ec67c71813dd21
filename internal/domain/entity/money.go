package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

// MaxDecimalPlaces is the maximum number of fractional digits allowed for amounts
const MaxDecimalPlaces = 2

// ParseAmount validates a decimal amount string and converts it to cents.
// The conversion is string-based to avoid floating point precision issues:
// "10" -> 1000, "10.5" -> 1050, "10.57" -> 1057. Negative values and more
// than two fractional digits are rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: multiple decimal points", errs.ErrInvalidAmount)
	}

	var digits string
	switch {
	case len(parts) == 1:
		digits = parts[0] + "00"
	case len(parts[1]) == 0:
		digits = parts[0] + "00"
	case len(parts[1]) == 1:
		digits = parts[0] + parts[1] + "0"
	case len(parts[1]) == 2:
		digits = parts[0] + parts[1]
	default:
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	cents, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return cents, nil
}

// ParsePositiveAmount is ParseAmount plus a strict positivity check.
// Transactions carry currency, so a zero amount is rejected as well.
func ParsePositiveAmount(amount string) (int64, error) {
	cents, err := ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, errs.ErrZeroAmount
	}
	return cents, nil
}

// FormatCents converts an amount in cents back to a decimal string with
// exactly two fractional digits: 1015 -> "10.15", 0 -> "0.00".
func FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	s := strconv.FormatInt(cents, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	out := s[:len(s)-2] + "." + s[len(s)-2:]
	if negative {
		return "-" + out
	}
	return out
}
