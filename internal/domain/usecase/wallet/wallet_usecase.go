package wallet

import (
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	"github.com/investapp/invest-wallet/internal/domain/port/persistence"
)

// WalletUseCase carries balance reads and the transaction application flow
type WalletUseCase struct {
	uow             persistence.UnitOfWork
	walletRepo      persistence.WalletRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewWalletUseCase creates a new WalletUseCase with all its dependencies
func NewWalletUseCase(
	uow persistence.UnitOfWork,
	walletRepo persistence.WalletRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *WalletUseCase {
	return &WalletUseCase{
		uow:             uow,
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}
