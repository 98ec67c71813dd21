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

func TestUpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	stored := approvedAccount(42)
	stored.FirstName = "Alice"
	stored.LastName = "Smith"
	stored.Phone = "111"
	f.uow.Accounts.On("GetByID", ctx, uint64(42)).Return(stored, nil)
	f.uow.Accounts.On("Update", ctx, stored).Return(nil)

	updated, err := f.useCase.UpdateProfile(ctx, 42, ProfileUpdate{
		LastName: "Jones",
		Phone:    "222",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "Jones", updated.LastName)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "222", updated.Phone)
	assert.Equal(t, fixedTime, updated.UpdatedAt)
}

func TestUpdateProfile_ChangingJoinedCodeRewritesReferral(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	stored := approvedAccount(42)
	stored.ReferralCode = "ab12cd34"
	f.uow.Accounts.On("GetByID", ctx, uint64(42)).Return(stored, nil)
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("Commit", ctx).Return(nil)
	f.uow.Accounts.On("Update", ctx, stored).Return(nil)
	f.uow.Referrals.On("Upsert", ctx, mock.MatchedBy(func(r *entity.Referral) bool {
		return r.AccountID == 42 && r.Code == "ab12cd34" && r.JoinedCode == "ff00ff00"
	})).Return(nil)

	updated, err := f.useCase.UpdateProfile(ctx, 42, ProfileUpdate{JoinedReferralCode: "ff00ff00"})

	require.NoError(t, err)
	assert.Equal(t, "ff00ff00", updated.JoinedReferralCode)
	f.uow.AssertExpectations(t)
	f.uow.Referrals.AssertExpectations(t)
}

func TestUpdateProfile_RejectsBadJoinedCodeLength(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	updated, err := f.useCase.UpdateProfile(ctx, 42, ProfileUpdate{JoinedReferralCode: "short"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrInvalidReferralCode)
	f.uow.Accounts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateProfile_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	f.uow.Accounts.On("GetByID", ctx, uint64(404)).Return(nil, errs.ErrAccountNotFound)

	updated, err := f.useCase.UpdateProfile(ctx, 404, ProfileUpdate{FirstName: "X"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestChangePassword_ReplacesCredential(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	stored := approvedAccount(42)
	f.uow.Accounts.On("GetByID", ctx, uint64(42)).Return(stored, nil)
	f.hasher.On("Compare", "hashed", "old-secret").Return(nil)
	f.hasher.On("Hash", "new-secret").Return("new-hash", nil)
	f.uow.Accounts.On("Update", ctx, mock.MatchedBy(func(a *entity.Account) bool {
		return a.PasswordHash == "new-hash"
	})).Return(nil)

	err := f.useCase.ChangePassword(ctx, 42, "old-secret", "new-secret", "new-secret")

	require.NoError(t, err)
	f.uow.Accounts.AssertExpectations(t)
}

func TestChangePassword_Refusals(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmation mismatch", func(t *testing.T) {
		f := newRegisterFixture()

		err := f.useCase.ChangePassword(ctx, 42, "old", "new", "other")

		assert.ErrorIs(t, err, errs.ErrPasswordMismatch)
		f.uow.Accounts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("empty new password", func(t *testing.T) {
		f := newRegisterFixture()

		err := f.useCase.ChangePassword(ctx, 42, "old", "", "")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("wrong old password", func(t *testing.T) {
		f := newRegisterFixture()
		f.uow.Accounts.On("GetByID", ctx, uint64(42)).Return(approvedAccount(42), nil)
		f.hasher.On("Compare", "hashed", "wrong").Return(errors.New("mismatch"))

		err := f.useCase.ChangePassword(ctx, 42, "wrong", "new-secret", "new-secret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		f.uow.Accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
