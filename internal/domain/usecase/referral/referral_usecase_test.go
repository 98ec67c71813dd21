package referral

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	errs "github.com/investapp/invest-wallet/internal/domain/error"
	coremocks "github.com/investapp/invest-wallet/mocks/port/core"
	persistencemocks "github.com/investapp/invest-wallet/mocks/port/persistence"
)

func newUseCase() (*ReferralUseCase, *persistencemocks.MockReferralRepository) {
	repo := new(persistencemocks.MockReferralRepository)
	return NewReferralUseCase(repo, coremocks.NoopLogger{}), repo
}

func TestCountJoins(t *testing.T) {
	ctx := context.Background()

	t.Run("counts accounts that joined with the code", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("CountJoins", ctx, "ab12cd34").Return(int64(3), nil)

		joins, err := useCase.CountJoins(ctx, "ab12cd34")

		require.NoError(t, err)
		assert.Equal(t, int64(3), joins)
	})

	t.Run("unused code counts zero", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("CountJoins", ctx, "lonely00").Return(int64(0), nil)

		joins, err := useCase.CountJoins(ctx, "lonely00")

		require.NoError(t, err)
		assert.Zero(t, joins)
	})
}

func TestGetOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("combines code, joined code and join count", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("GetByAccountID", ctx, uint64(42)).Return(&entity.Referral{
			AccountID:  42,
			Code:       "ab12cd34",
			JoinedCode: "ref99xy1",
		}, nil)
		repo.On("CountJoins", ctx, "ab12cd34").Return(int64(5), nil)

		overview, err := useCase.GetOverview(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, "ab12cd34", overview.Code)
		assert.Equal(t, "ref99xy1", overview.JoinedWith)
		assert.Equal(t, int64(5), overview.Joins)
	})

	t.Run("account without a referral row", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("GetByAccountID", ctx, uint64(7)).Return(nil, errs.ErrNotFound)

		overview, err := useCase.GetOverview(ctx, 7)

		assert.Nil(t, overview)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
