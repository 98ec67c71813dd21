package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

func TestNewWallet(t *testing.T) {
	t.Run("creates empty wallet", func(t *testing.T) {
		wallet, err := NewWallet(1, "12345678", testClock)

		require.NoError(t, err)
		assert.Equal(t, int64(0), wallet.Balance())
		assert.Equal(t, "0.00", wallet.DisplayBalance())
		assert.Equal(t, "12345678", wallet.Number)
	})

	t.Run("rejects missing account", func(t *testing.T) {
		_, err := NewWallet(0, "12345678", testClock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("rejects malformed number", func(t *testing.T) {
		_, err := NewWallet(1, "123", testClock)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestWalletCreditDebit(t *testing.T) {
	wallet, err := NewWallet(1, "12345678", testClock)
	require.NoError(t, err)

	require.NoError(t, wallet.Credit(10000, testClock)) // 100.00
	assert.Equal(t, "100.00", wallet.DisplayBalance())

	t.Run("debit over balance refused with no mutation", func(t *testing.T) {
		err := wallet.Debit(15000, testClock)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, "100.00", wallet.DisplayBalance())
	})

	t.Run("debit within balance succeeds", func(t *testing.T) {
		require.NoError(t, wallet.Debit(4000, testClock))
		assert.Equal(t, "60.00", wallet.DisplayBalance())
	})

	t.Run("debit to exactly zero allowed", func(t *testing.T) {
		require.NoError(t, wallet.Debit(6000, testClock))
		assert.Equal(t, "0.00", wallet.DisplayBalance())
		assert.False(t, wallet.CanDebit(1))
	})
}

func TestWalletCreditOverflowRefused(t *testing.T) {
	wallet, err := NewWallet(1, "12345678", testClock)
	require.NoError(t, err)
	wallet.SetBalance(math.MaxInt64 - 100)

	err = wallet.Credit(101, testClock)

	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, int64(math.MaxInt64-100), wallet.Balance())

	require.NoError(t, wallet.Credit(100, testClock))
	assert.Equal(t, int64(math.MaxInt64), wallet.Balance())
}

func TestWalletCanDebit(t *testing.T) {
	wallet, _ := NewWallet(1, "12345678", testClock)
	wallet.SetBalance(500)

	assert.True(t, wallet.CanDebit(500))
	assert.True(t, wallet.CanDebit(1))
	assert.False(t, wallet.CanDebit(501))
}
