package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coremocks "github.com/investapp/invest-wallet/mocks/port/core"
	persistencemocks "github.com/investapp/invest-wallet/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type registerFixture struct {
	uow     *persistencemocks.MockUnitOfWork
	hasher  *coremocks.MockPasswordHasher
	codes   *coremocks.MockCodeGenerator
	tokens  *coremocks.MockTokenIssuer
	useCase *AccountUseCase
}

func newRegisterFixture() *registerFixture {
	uow := persistencemocks.NewMockUnitOfWork()
	hasher := new(coremocks.MockPasswordHasher)
	codes := new(coremocks.MockCodeGenerator)
	tokens := new(coremocks.MockTokenIssuer)
	tp := &coremocks.FixedTimeProvider{Fixed: fixedTime}

	useCase := NewAccountUseCase(uow, uow.Accounts, hasher, codes, tokens, tp, coremocks.NoopLogger{})
	return &registerFixture{uow: uow, hasher: hasher, codes: codes, tokens: tokens, useCase: useCase}
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		FirstName:       "Alice",
		LastName:        "Smith",
	}
}

func TestRegister_ProvisionsAccountWalletAndReferral(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	f.uow.Accounts.On("UsernameOrEmailTaken", ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("Commit", ctx).Return(nil)

	f.codes.On("ReferralCode").Return("ab12cd34").Once()
	f.uow.Accounts.On("ReferralCodeExists", ctx, "ab12cd34").Return(false, nil)
	f.uow.Accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 42
		}).Return(nil)

	f.codes.On("WalletNumber").Return("87654321").Once()
	f.uow.Wallets.On("NumberExists", ctx, "87654321").Return(false, nil)
	f.uow.Wallets.On("Create", ctx, mock.AnythingOfType("*entity.Wallet")).
		Run(func(args mock.Arguments) {
			wallet := args.Get(1).(*entity.Wallet)
			assert.Equal(t, uint64(42), wallet.AccountID)
			assert.Equal(t, int64(0), wallet.Balance())
		}).Return(nil)

	f.uow.Referrals.On("Upsert", ctx, mock.AnythingOfType("*entity.Referral")).
		Run(func(args mock.Arguments) {
			referral := args.Get(1).(*entity.Referral)
			assert.Equal(t, uint64(42), referral.AccountID)
			assert.Equal(t, "ab12cd34", referral.Code)
			assert.Equal(t, "", referral.JoinedCode)
		}).Return(nil)

	account, err := f.useCase.Register(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, account.Status)
	assert.Equal(t, "hashed", account.PasswordHash)
	assert.Equal(t, "ab12cd34", account.ReferralCode)
	f.uow.AssertExpectations(t)
	f.uow.Accounts.AssertExpectations(t)
	f.uow.Wallets.AssertExpectations(t)
	f.uow.Referrals.AssertExpectations(t)
}

func TestRegister_CapturesJoinedReferralCode(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	req := validRequest()
	req.JoinedReferralCode = "ref99xy1"

	f.uow.Accounts.On("UsernameOrEmailTaken", ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("Commit", ctx).Return(nil)
	f.codes.On("ReferralCode").Return("ab12cd34")
	f.uow.Accounts.On("ReferralCodeExists", ctx, "ab12cd34").Return(false, nil)
	f.uow.Accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 42
		}).Return(nil)
	f.codes.On("WalletNumber").Return("87654321")
	f.uow.Wallets.On("NumberExists", ctx, "87654321").Return(false, nil)
	f.uow.Wallets.On("Create", ctx, mock.AnythingOfType("*entity.Wallet")).Return(nil)
	f.uow.Referrals.On("Upsert", ctx, mock.MatchedBy(func(r *entity.Referral) bool {
		return r.JoinedCode == "ref99xy1"
	})).Return(nil)

	account, err := f.useCase.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "ref99xy1", account.JoinedReferralCode)
}

func TestRegister_ValidationFailures(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		{"password mismatch", func(r *RegisterRequest) { r.PasswordConfirm = "different" }, errs.ErrPasswordMismatch},
		{"empty username", func(r *RegisterRequest) { r.Username = "" }, errs.ErrValidation},
		{"empty email", func(r *RegisterRequest) { r.Email = "" }, errs.ErrValidation},
		{"empty password", func(r *RegisterRequest) { r.Password = ""; r.PasswordConfirm = "" }, errs.ErrValidation},
		{"short referral code", func(r *RegisterRequest) { r.JoinedReferralCode = "abc" }, errs.ErrInvalidReferralCode},
		{"invalid plan", func(r *RegisterRequest) { tier := 42; r.Plan = &tier }, errs.ErrInvalidPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRegisterFixture()
			req := validRequest()
			tt.mutate(&req)

			account, err := f.useCase.Register(ctx, req)

			assert.Nil(t, account)
			assert.ErrorIs(t, err, tt.wantErr)
			// no partial account: nothing was even attempted
			f.uow.AssertNotCalled(t, "Begin", mock.Anything)
			f.uow.Accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	f.uow.Accounts.On("UsernameOrEmailTaken", ctx, "alice", "alice@example.com").Return(true, nil)

	account, err := f.useCase.Register(ctx, validRequest())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRegister_ReferralCodeCollisionRetries(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	f.uow.Accounts.On("UsernameOrEmailTaken", ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("Commit", ctx).Return(nil)

	// first draw collides, second is free
	f.codes.On("ReferralCode").Return("collided").Once()
	f.codes.On("ReferralCode").Return("fresh123").Once()
	f.uow.Accounts.On("ReferralCodeExists", ctx, "collided").Return(true, nil)
	f.uow.Accounts.On("ReferralCodeExists", ctx, "fresh123").Return(false, nil)
	f.uow.Accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 42
		}).Return(nil)
	f.codes.On("WalletNumber").Return("87654321")
	f.uow.Wallets.On("NumberExists", ctx, "87654321").Return(false, nil)
	f.uow.Wallets.On("Create", ctx, mock.AnythingOfType("*entity.Wallet")).Return(nil)
	f.uow.Referrals.On("Upsert", ctx, mock.AnythingOfType("*entity.Referral")).Return(nil)

	account, err := f.useCase.Register(ctx, validRequest())

	require.NoError(t, err)
	assert.Equal(t, "fresh123", account.ReferralCode)
	f.codes.AssertExpectations(t)
}

func TestRegister_ReferralCodeExhaustedAttempts(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()
	f.useCase.WithCodeAttempts(3)

	f.uow.Accounts.On("UsernameOrEmailTaken", ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("Rollback", ctx).Return(nil)

	f.codes.On("ReferralCode").Return("collided").Times(3)
	f.uow.Accounts.On("ReferralCodeExists", ctx, "collided").Return(true, nil)

	account, err := f.useCase.Register(ctx, validRequest())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, errs.ErrIntegrityConflict)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.uow.Accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_WalletCreateFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newRegisterFixture()

	f.uow.Accounts.On("UsernameOrEmailTaken", ctx, "alice", "alice@example.com").Return(false, nil)
	f.hasher.On("Hash", "secret123").Return("hashed", nil)
	f.uow.On("Begin", ctx).Return(ctx, nil)
	f.uow.On("Rollback", ctx).Return(nil)
	f.codes.On("ReferralCode").Return("ab12cd34")
	f.uow.Accounts.On("ReferralCodeExists", ctx, "ab12cd34").Return(false, nil)
	f.uow.Accounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 42
		}).Return(nil)
	f.codes.On("WalletNumber").Return("87654321")
	f.uow.Wallets.On("NumberExists", ctx, "87654321").Return(false, nil)
	f.uow.Wallets.On("Create", ctx, mock.AnythingOfType("*entity.Wallet")).Return(errs.ErrDatabaseConnection)

	account, err := f.useCase.Register(ctx, validRequest())

	assert.Nil(t, account)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.uow.Referrals.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
