package core

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock for the core.Logger port
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}

// NoopLogger is a Logger that discards everything. Handy when a test does
// not care about log assertions.
type NoopLogger struct{}

func (NoopLogger) Debug(string, map[string]any) {}
func (NoopLogger) Info(string, map[string]any)  {}
func (NoopLogger) Warn(string, map[string]any)  {}
func (NoopLogger) Error(string, map[string]any) {}
func (NoopLogger) Flush() error                 { return nil }

// MockTimeProvider is a testify mock for the core.TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// FixedTimeProvider always returns the same instant
type FixedTimeProvider struct {
	Fixed time.Time
}

func (p *FixedTimeProvider) Now() time.Time { return p.Fixed }

// MockPasswordHasher is a testify mock for the core.PasswordHasher port
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, plain string) error {
	args := m.Called(hash, plain)
	return args.Error(0)
}

// MockCodeGenerator is a testify mock for the core.CodeGenerator port
type MockCodeGenerator struct {
	mock.Mock
}

func (m *MockCodeGenerator) ReferralCode() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockCodeGenerator) WalletNumber() string {
	args := m.Called()
	return args.String(0)
}

// MockTokenIssuer is a testify mock for the core.TokenIssuer port
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(accountID uint64, isAdmin bool) (string, error) {
	args := m.Called(accountID, isAdmin)
	return args.String(0), args.Error(1)
}
