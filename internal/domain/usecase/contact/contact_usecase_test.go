package contact

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

func newUseCase() (*ContactUseCase, *persistencemocks.MockContactMessageRepository) {
	repo := new(persistencemocks.MockContactMessageRepository)
	tp := &coremocks.FixedTimeProvider{Fixed: fixedTime}
	return NewContactUseCase(repo, tp, coremocks.NoopLogger{}), repo
}

func admin() *entity.Account {
	return &entity.Account{ID: 1, Username: "admin", IsAdmin: true}
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an unanswered message", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("Create", ctx, mock.AnythingOfType("*entity.ContactMessage")).Return(nil)

		m, err := useCase.Send(ctx, 42, "when does my deposit clear?")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), m.AccountID)
		assert.Equal(t, entity.NoResponseYet, m.Response)
		assert.False(t, m.Answered())
		assert.Equal(t, fixedTime, m.SentAt)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		useCase, repo := newUseCase()

		m, err := useCase.Send(ctx, 42, "")

		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	useCase, repo := newUseCase()

	messages := []*entity.ContactMessage{
		{ID: 2, AccountID: 42, Message: "second"},
		{ID: 1, AccountID: 42, Message: "first", Response: "answered"},
	}
	repo.On("ListByAccountID", ctx, uint64(42)).Return(messages, nil)

	got, err := useCase.List(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, messages, got)
}

func TestRespond(t *testing.T) {
	ctx := context.Background()

	t.Run("records the response", func(t *testing.T) {
		useCase, repo := newUseCase()
		stored := &entity.ContactMessage{ID: 5, AccountID: 42, Message: "help", Response: entity.NoResponseYet}
		repo.On("GetByID", ctx, uint64(5)).Return(stored, nil)
		repo.On("Update", ctx, stored).Return(nil)

		m, err := useCase.Respond(ctx, admin(), 5, "deposits clear within a day")

		require.NoError(t, err)
		assert.Equal(t, "deposits clear within a day", m.Response)
		assert.True(t, m.Answered())
	})

	t.Run("requires admin", func(t *testing.T) {
		useCase, repo := newUseCase()

		m, err := useCase.Respond(ctx, &entity.Account{ID: 2}, 5, "answer")

		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrAdminRequired)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty response", func(t *testing.T) {
		useCase, repo := newUseCase()

		m, err := useCase.Respond(ctx, admin(), 5, "")

		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown message", func(t *testing.T) {
		useCase, repo := newUseCase()
		repo.On("GetByID", ctx, uint64(404)).Return(nil, errs.ErrNotFound)

		m, err := useCase.Respond(ctx, admin(), 404, "answer")

		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}
