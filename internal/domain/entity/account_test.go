package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

// fixedClock pins Now() for deterministic entity tests
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

var testClock = &fixedClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

func TestNewAccount(t *testing.T) {
	t.Run("creates pending account", func(t *testing.T) {
		account, err := NewAccount("alice", "alice@example.com", "hashed-secret", testClock)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, account.Status)
		assert.False(t, account.CanAccessLedger())
		assert.Nil(t, account.Plan)
		assert.Equal(t, testClock.now, account.CreatedAt)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		_, err := NewAccount("", "alice@example.com", "hash", testClock)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewAccount("alice", "", "hash", testClock)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewAccount("alice", "alice@example.com", "", testClock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestAccountStatusTransitions(t *testing.T) {
	t.Run("approve grants ledger access", func(t *testing.T) {
		account, _ := NewAccount("bob", "bob@example.com", "hash", testClock)

		require.NoError(t, account.Approve(testClock))
		assert.Equal(t, StatusApproved, account.Status)
		assert.True(t, account.CanAccessLedger())
	})

	t.Run("decline blocks ledger access", func(t *testing.T) {
		account, _ := NewAccount("carol", "carol@example.com", "hash", testClock)

		require.NoError(t, account.Decline(testClock))
		assert.Equal(t, StatusDeclined, account.Status)
		assert.False(t, account.CanAccessLedger())
	})

	t.Run("only pending accounts transition", func(t *testing.T) {
		account, _ := NewAccount("dave", "dave@example.com", "hash", testClock)
		require.NoError(t, account.Approve(testClock))

		assert.ErrorIs(t, account.Approve(testClock), errs.ErrInvalidStatusChange)
		assert.ErrorIs(t, account.Decline(testClock), errs.ErrInvalidStatusChange)
	})
}

func TestSelectPlan(t *testing.T) {
	account, _ := NewAccount("erin", "erin@example.com", "hash", testClock)

	for _, tier := range PlanTiers {
		assert.NoError(t, account.SelectPlan(tier))
		require.NotNil(t, account.Plan)
		assert.Equal(t, tier, *account.Plan)
	}

	assert.ErrorIs(t, account.SelectPlan(50), errs.ErrInvalidPlan)
	assert.ErrorIs(t, account.SelectPlan(0), errs.ErrInvalidPlan)
	assert.ErrorIs(t, account.SelectPlan(-100), errs.ErrInvalidPlan)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("approved"))
	assert.True(t, IsValidStatus("declined"))
	assert.False(t, IsValidStatus("frozen"))
	assert.False(t, IsValidStatus(""))
}
