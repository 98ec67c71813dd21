package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
)

func TestEnsureLedgerAccess(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		wantErr error
	}{
		{"approved account passes", &entity.Account{Status: entity.StatusApproved}, nil},
		{"pending account is gated", &entity.Account{Status: entity.StatusPending}, errs.ErrAccountPending},
		{"declined account is gated", &entity.Account{Status: entity.StatusDeclined}, errs.ErrAccountDeclined},
		{"admin bypasses the gate", &entity.Account{Status: entity.StatusPending, IsAdmin: true}, nil},
		{"nil account", nil, errs.ErrAccountNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureLedgerAccess(tt.account)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("approved account is returned", func(t *testing.T) {
		f := newRegisterFixture()
		stored := approvedAccount(42)
		f.uow.Accounts.On("GetByID", ctx, uint64(42)).Return(stored, nil)

		account, err := f.useCase.AuthorizeLedger(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, stored, account)
	})

	t.Run("pending account is refused", func(t *testing.T) {
		f := newRegisterFixture()
		f.uow.Accounts.On("GetByID", ctx, uint64(7)).Return(pendingAccount(7), nil)

		account, err := f.useCase.AuthorizeLedger(ctx, 7)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrAccountPending)
	})

	t.Run("missing account", func(t *testing.T) {
		f := newRegisterFixture()
		f.uow.Accounts.On("GetByID", ctx, uint64(404)).Return(nil, errs.ErrAccountNotFound)

		account, err := f.useCase.AuthorizeLedger(ctx, 404)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})
}
