package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// MockAccountRepository is a testify mock for persistence.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockWalletRepository is a testify mock for persistence.WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetByAccountID(ctx context.Context, accountID uint64) (*entity.Wallet, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByNumber(ctx context.Context, number string) (*entity.Wallet, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByNumberForUpdate(ctx context.Context, number string) (*entity.Wallet, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

// MockTransactionRepository is a testify mock for persistence.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByWalletID(ctx context.Context, walletID uint64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumByKind(ctx context.Context, kind entity.TransactionKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

// MockReferralRepository is a testify mock for persistence.ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Upsert(ctx context.Context, referral *entity.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

func (m *MockReferralRepository) GetByAccountID(ctx context.Context, accountID uint64) (*entity.Referral, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Referral), args.Error(1)
}

func (m *MockReferralRepository) CountJoins(ctx context.Context, code string) (int64, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(int64), args.Error(1)
}

// MockAlertRepository is a testify mock for persistence.AlertRepository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) ListFeed(ctx context.Context, username string) ([]*entity.Alert, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Alert), args.Error(1)
}

// MockContactMessageRepository is a testify mock for persistence.ContactMessageRepository
type MockContactMessageRepository struct {
	mock.Mock
}

func (m *MockContactMessageRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) GetByID(ctx context.Context, id uint64) (*entity.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) ListByAccountID(ctx context.Context, accountID uint64) ([]*entity.ContactMessage, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) Update(ctx context.Context, message *entity.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockUnitOfWork is a testify mock for persistence.UnitOfWork. The repository
// getters return whatever repositories the test wired in, so a test can run
// the whole orchestration against mocks.
type MockUnitOfWork struct {
	mock.Mock

	Accounts     *MockAccountRepository
	Wallets      *MockWalletRepository
	Transactions *MockTransactionRepository
	Referrals    *MockReferralRepository
}

// NewMockUnitOfWork builds a MockUnitOfWork with fresh repository mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Accounts:     new(MockAccountRepository),
		Wallets:      new(MockWalletRepository),
		Transactions: new(MockTransactionRepository),
		Referrals:    new(MockReferralRepository),
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return m.Accounts
}

func (m *MockUnitOfWork) GetWalletRepository(ctx context.Context) persistence.WalletRepository {
	return m.Wallets
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return m.Transactions
}

func (m *MockUnitOfWork) GetReferralRepository(ctx context.Context) persistence.ReferralRepository {
	return m.Referrals
}
