package logger

import (
	"github.com/investapp/invest-wallet/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything.
// Useful when logging is disabled.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(message string, fields map[string]any) {}

func (l *NoopLogger) Info(message string, fields map[string]any) {}

func (l *NoopLogger) Warn(message string, fields map[string]any) {}

func (l *NoopLogger) Error(message string, fields map[string]any) {}

func (l *NoopLogger) Flush() error {
	return nil
}
