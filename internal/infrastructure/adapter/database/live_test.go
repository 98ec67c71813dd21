package database

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/investapp/invest-wallet/internal/domain/error"
	walletuc "github.com/investapp/invest-wallet/internal/domain/usecase/wallet"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/logger"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/repository"
)

// These tests run against a real PostgreSQL instance and are skipped unless
// TEST_DB_HOST is set. Configure the target with the TEST_DB_* variables
// understood by NewTestDBManager.
func setupLiveDB(t *testing.T) *TestDBManager {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set; skipping live database tests")
	}

	m := NewTestDBManager(t, logger.NewNoopLogger())
	require.NoError(t, m.Connect(t))
	m.SetupTestDB(t)
	t.Cleanup(func() { m.Close(t) })
	return m
}

func TestLiveTransactionFlow(t *testing.T) {
	m := setupLiveDB(t)
	ctx := context.Background()

	m.CreateTestAccount(t, 1, "alice")
	m.CreateTestWallet(t, 1, 0)

	wallets := repository.NewWalletRepository(m.Manager.DB(), m.Logger)
	transactions := repository.NewTransactionRepository(m.Manager.DB(), m.Logger)
	useCase := walletuc.NewWalletUseCase(m.Manager.CreateUnitOfWork(), wallets, transactions, m.TimeProvider, m.Logger)

	_, err := useCase.ApplyTransaction(ctx, "00000001", "deposit", "100.00")
	require.NoError(t, err)

	_, err = useCase.ApplyTransaction(ctx, "00000001", "withdraw", "150.00")
	assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

	_, err = useCase.ApplyTransaction(ctx, "00000001", "withdraw", "40.00")
	require.NoError(t, err)

	wallet, err := wallets.GetByNumber(ctx, "00000001")
	require.NoError(t, err)
	assert.Equal(t, "60.00", wallet.DisplayBalance())

	history, err := transactions.ListByWalletID(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2, "the refused withdrawal must leave no row")
}

func TestLiveAccountUpdatePersistsJoinedReferralCode(t *testing.T) {
	m := setupLiveDB(t)
	ctx := context.Background()

	m.CreateTestAccount(t, 1, "alice")

	accounts := repository.NewAccountRepository(m.Manager.DB(), m.Logger)

	account, err := accounts.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, account.JoinedReferralCode)

	account.JoinedReferralCode = "ff00ff00"
	account.UpdatedAt = m.TimeProvider.Now()
	require.NoError(t, accounts.Update(ctx, account))

	reloaded, err := accounts.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "ff00ff00", reloaded.JoinedReferralCode)
}

func TestLiveUnitOfWorkRollbackLeavesNoTrace(t *testing.T) {
	m := setupLiveDB(t)
	ctx := context.Background()

	m.CreateTestAccount(t, 1, "alice")
	m.CreateTestWallet(t, 1, 5000)

	uow := m.Manager.CreateUnitOfWork()
	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	wallet, err := uow.GetWalletRepository(txCtx).GetByNumberForUpdate(txCtx, "00000001")
	require.NoError(t, err)
	require.NoError(t, wallet.Credit(2500, m.TimeProvider))
	require.NoError(t, uow.GetWalletRepository(txCtx).Update(txCtx, wallet))

	require.NoError(t, uow.Rollback(txCtx))

	wallets := repository.NewWalletRepository(m.Manager.DB(), m.Logger)
	reloaded, err := wallets.GetByNumber(ctx, "00000001")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), reloaded.Balance())
}
