package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient balance", ErrInsufficientBalance, CodeInsufficientBalance},
		{"invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"negative amount", ErrNegativeAmount, CodeInvalidAmount},
		{"zero amount", ErrZeroAmount, CodeInvalidAmount},
		{"password mismatch", ErrPasswordMismatch, CodePasswordMismatch},
		{"duplicate account", ErrDuplicateAccount, CodeDuplicateAccount},
		{"integrity conflict", ErrIntegrityConflict, CodeIntegrityConflict},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"account pending", ErrAccountPending, CodeAccountPending},
		{"account declined", ErrAccountDeclined, CodeAccountDeclined},
		{"admin required", ErrAdminRequired, CodeAdminRequired},
		{"account not found", ErrAccountNotFound, CodeAccountNotFound},
		{"wallet not found", ErrWalletNotFound, CodeWalletNotFound},
		{"invalid plan", ErrInvalidPlan, CodeValidation},
		{"unknown error", errors.New("boom"), CodeInternalServer},
		{"wrapped error", fmt.Errorf("context: %w", ErrInsufficientBalance), CodeInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError("12345678", "150.00", "100.00")

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.True(t, IsInsufficientBalanceError(err))
	assert.Contains(t, err.Error(), "12345678")
	assert.Contains(t, err.Error(), "150.00")
	assert.Contains(t, err.Error(), "100.00")

	var ibe *InsufficientBalanceError
	assert.True(t, errors.As(err, &ibe))
	fields := ibe.LogFields()
	assert.Equal(t, "insufficient_balance", fields["error_type"])
	assert.Equal(t, CodeInsufficientBalance, fields["error_code"])
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("password2", "passwords do not match", ErrPasswordMismatch)

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "password2")
}

func TestProvisioningError(t *testing.T) {
	err := NewProvisioningError("referral_code", "alice", ErrIntegrityConflict)

	assert.ErrorIs(t, err, ErrIntegrityConflict)
	assert.True(t, IsConflictError(err))

	var pe *ProvisioningError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "referral_code", pe.LogFields()["step"])
}

func TestErrorClassifiers(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrAccountNotFound))
	assert.True(t, IsNotFoundError(ErrWalletNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrInsufficientBalance))

	assert.True(t, IsAccessError(ErrAccountPending))
	assert.True(t, IsAccessError(ErrAccountDeclined))
	assert.True(t, IsAccessError(ErrAdminRequired))
	assert.False(t, IsAccessError(ErrAccountNotFound))

	assert.True(t, IsConflictError(ErrDuplicateAccount))
	assert.False(t, IsConflictError(ErrValidation))
}
