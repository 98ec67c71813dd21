package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		want      bool
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_accounts_username"`), classifier.IsDuplicateKeyError, true},
		{"not a duplicate", errors.New("connection refused"), classifier.IsDuplicateKeyError, false},
		{"deadlock is a lock error", errors.New("deadlock detected"), classifier.IsLockError, true},
		{"serialization failure is a lock error", errors.New("could not serialize access due to concurrent update"), classifier.IsLockError, true},
		{"refused connection", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), classifier.IsConnectionError, true},
		{"broken pipe is transient", errors.New("write: broken pipe"), classifier.IsTransientError, true},
		{"foreign key is a constraint error", errors.New(`insert or update on table "wallets" violates foreign key constraint`), classifier.IsConstraintError, true},
		{"plain error matches nothing", errors.New("some application error"), classifier.IsConstraintError, false},
		{"nil error", nil, classifier.IsLockError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.predicate(tt.err))
		})
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("violates unique constraint idx_accounts_referral_code", "referral_code"))
	assert.False(t, containsAny("violates unique constraint idx_accounts_username", "referral_code"))
}
