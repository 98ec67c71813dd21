package alert

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

func newUseCase() (*AlertUseCase, *persistencemocks.MockAlertRepository) {
	repo := new(persistencemocks.MockAlertRepository)
	tp := &coremocks.FixedTimeProvider{Fixed: fixedTime}
	return NewAlertUseCase(repo, tp, coremocks.NoopLogger{}), repo
}

func admin() *entity.Account {
	return &entity.Account{ID: 1, Username: "admin", IsAdmin: true}
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	t.Run("broadcast alert has no recipient", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("Create", ctx, mock.AnythingOfType("*entity.Alert")).Return(nil)

		a, err := useCase.Publish(ctx, admin(), "maintenance tonight", "")

		require.NoError(t, err)
		assert.True(t, a.IsBroadcast())
		assert.Equal(t, fixedTime, a.CreatedAt)
	})

	t.Run("direct alert targets one username", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("Create", ctx, mock.AnythingOfType("*entity.Alert")).Return(nil)

		a, err := useCase.Publish(ctx, admin(), "your deposit cleared", "alice")

		require.NoError(t, err)
		assert.False(t, a.IsBroadcast())
		assert.Equal(t, "alice", a.Recipient)
	})

	t.Run("requires admin", func(t *testing.T) {
		useCase, repo := newUseCase()

		a, err := useCase.Publish(ctx, &entity.Account{ID: 2}, "nope", "")

		assert.Nil(t, a)
		assert.ErrorIs(t, err, errs.ErrAdminRequired)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		useCase, repo := newUseCase()

		a, err := useCase.Publish(ctx, admin(), "", "")

		assert.Nil(t, a)
		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFeed(t *testing.T) {
	ctx := context.Background()
	useCase, repo := newUseCase()

	visible := []*entity.Alert{
		{ID: 2, Message: "your deposit cleared", Recipient: "alice"},
		{ID: 1, Message: "maintenance tonight"},
	}
	repo.On("ListFeed", ctx, "alice").Return(visible, nil)

	alerts, err := useCase.Feed(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, visible, alerts)
}
