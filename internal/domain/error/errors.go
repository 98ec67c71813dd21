package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidAmount       = 4002
	CodeInsufficientBalance = 4003
	CodePasswordMismatch    = 4004
	CodeDuplicateAccount    = 4005
	CodeIntegrityConflict   = 4006
	CodeInvalidCredentials  = 4010
	CodeAccountPending      = 4031
	CodeAccountDeclined     = 4032
	CodeAdminRequired       = 4033
	CodeAccountNotFound     = 4040
	CodeWalletNotFound      = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned for malformed or inconsistent input
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when the transaction amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the transaction amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrZeroAmount is returned when the transaction amount is zero
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientBalance is returned when a withdrawal exceeds the wallet balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidTransactionKind is returned when the kind is not deposit or withdraw
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrPasswordMismatch is returned when the two password confirmations differ
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidPlan is returned when the selected plan is not one of the fixed tiers
	ErrInvalidPlan = errors.New("invalid plan tier")

	// ErrInvalidReferralCode is returned when a referral code is not 8 characters
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrDuplicateAccount is returned when the username or email is already taken
	ErrDuplicateAccount = errors.New("username or email already exists")

	// ErrIntegrityConflict is returned when a generated identifier keeps colliding
	// after the bounded number of retries
	ErrIntegrityConflict = errors.New("identifier conflict during provisioning")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrWalletNotFound is returned when the requested wallet doesn't exist
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrAccountPending is returned when a pending account tries to reach the ledger
	ErrAccountPending = errors.New("account is pending approval")

	// ErrAccountDeclined is returned when a declined account tries to reach the ledger
	ErrAccountDeclined = errors.New("account has been declined")

	// ErrInvalidStatusChange is returned for a status transition that is not allowed
	ErrInvalidStatusChange = errors.New("invalid status transition")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAdminRequired is returned when a non-admin actor calls an admin operation
	ErrAdminRequired = errors.New("administrator capability required")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrNegativeAmount),
		errors.Is(err, ErrZeroAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrPasswordMismatch):
		return CodePasswordMismatch
	case errors.Is(err, ErrDuplicateAccount):
		return CodeDuplicateAccount
	case errors.Is(err, ErrIntegrityConflict):
		return CodeIntegrityConflict
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrAccountPending):
		return CodeAccountPending
	case errors.Is(err, ErrAccountDeclined):
		return CodeAccountDeclined
	case errors.Is(err, ErrAdminRequired):
		return CodeAdminRequired
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidPlan),
		errors.Is(err, ErrInvalidReferralCode),
		errors.Is(err, ErrInvalidTransactionKind),
		errors.Is(err, ErrInvalidStatusChange),
		errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError carries balance details for a refused withdrawal
type InsufficientBalanceError struct {
	WalletNumber string
	Amount       string
	CurrBalance  string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance in wallet %s: requested %s, available %s",
		e.WalletNumber, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"wallet_number":   e.WalletNumber,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(walletNumber, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		WalletNumber: walletNumber,
		Amount:       amount,
		CurrBalance:  currentBalance,
	}
}

// ValidationError wraps a field-level validation failure
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || errors.Is(e.Err, target)
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, reason string, err error) error {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// ProvisioningError describes a failed account/wallet provisioning step
type ProvisioningError struct {
	Step     string
	Username string
	Err      error
}

// Error implements the error interface
func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning failed at %s for %s: %v", e.Step, e.Username, e.Err)
}

// Unwrap returns the underlying error
func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ProvisioningError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "provisioning_error",
		"step":       e.Step,
		"username":   e.Username,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewProvisioningError creates a detailed provisioning error
func NewProvisioningError(step, username string, err error) error {
	return &ProvisioningError{Step: step, Username: username, Err: err}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsValidationError checks if the error is any validation-class error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrInvalidPlan) ||
		errors.Is(err, ErrInvalidReferralCode) ||
		errors.Is(err, ErrInvalidTransactionKind) ||
		errors.Is(err, ErrInvalidStatusChange)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsAccessError checks if the error means the caller may not reach the ledger
func IsAccessError(err error) bool {
	return errors.Is(err, ErrAccountPending) ||
		errors.Is(err, ErrAccountDeclined) ||
		errors.Is(err, ErrAdminRequired)
}

// IsConflictError checks if the error is a uniqueness or provisioning conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateAccount) ||
		errors.Is(err, ErrIntegrityConflict)
}
