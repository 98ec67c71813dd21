package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

func approvedAccount(id uint64) *entity.Account {
	return &entity.Account{
		ID:           id,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Status:       entity.StatusApproved,
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	stored := approvedAccount(42)
	f.uow.Accounts.On("GetByUsername", ctx, "alice").Return(stored, nil)
	f.hasher.On("Compare", "hashed", "secret123").Return(nil)
	f.tokens.On("Issue", uint64(42), false).Return("jwt-token", nil)

	token, account, err := f.useCase.Login(ctx, "alice", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, stored, account)
}

func TestLogin_AdminFlagFlowsIntoToken(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	stored := approvedAccount(1)
	stored.IsAdmin = true
	f.uow.Accounts.On("GetByUsername", ctx, "alice").Return(stored, nil)
	f.hasher.On("Compare", "hashed", "secret123").Return(nil)
	f.tokens.On("Issue", uint64(1), true).Return("admin-token", nil)

	token, _, err := f.useCase.Login(ctx, "alice", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "admin-token", token)
	f.tokens.AssertExpectations(t)
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		f := newRegisterFixture()
		f.uow.Accounts.On("GetByUsername", ctx, "ghost").Return(nil, errs.ErrAccountNotFound)

		token, account, err := f.useCase.Login(ctx, "ghost", "whatever")

		assert.Empty(t, token)
		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newRegisterFixture()
		f.uow.Accounts.On("GetByUsername", ctx, "alice").Return(approvedAccount(42), nil)
		f.hasher.On("Compare", "hashed", "wrong").Return(errors.New("mismatch"))

		token, account, err := f.useCase.Login(ctx, "alice", "wrong")

		assert.Empty(t, token)
		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
	})
}

func TestLogin_PendingAccountCanStillAuthenticate(t *testing.T) {
	// approval gates the ledger, not the session
	ctx := context.Background()
	f := newRegisterFixture()

	stored := approvedAccount(7)
	stored.Status = entity.StatusPending
	f.uow.Accounts.On("GetByUsername", ctx, "alice").Return(stored, nil)
	f.hasher.On("Compare", "hashed", "secret123").Return(nil)
	f.tokens.On("Issue", uint64(7), false).Return("jwt-token", nil)

	_, account, err := f.useCase.Login(ctx, "alice", "secret123")

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, account.Status)
}
