package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/investapp/invest-wallet/internal/domain/entity"
	coreport "github.com/investapp/invest-wallet/internal/domain/port/core"
	accountUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/account"
	walletUseCase "github.com/investapp/invest-wallet/internal/domain/usecase/wallet"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/investapp/invest-wallet/internal/infrastructure/adapter/api/middleware"
)

// WalletHandler handles balance reads, ledger listings and transactions
type WalletHandler struct {
	wallets  *walletUseCase.WalletUseCase
	accounts *accountUseCase.AccountUseCase
	logger   coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	wallets *walletUseCase.WalletUseCase,
	accounts *accountUseCase.AccountUseCase,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		wallets:  wallets,
		accounts: accounts,
		logger:   logger,
	}
}

// GetBalance handles the GET /wallet/balance endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	statement, err := h.ledgerStatement(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		WalletNumber: statement.WalletNumber,
		Balance:      statement.Balance,
	})
}

// GetTransactions handles the GET /wallet/transactions endpoint
func (h *WalletHandler) GetTransactions(c *gin.Context) {
	statement, err := h.ledgerStatement(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	transactions := make([]dto.TransactionResponse, 0, len(statement.Transactions))
	for _, txn := range statement.Transactions {
		transactions = append(transactions, transactionToResponse(txn))
	}

	c.JSON(http.StatusOK, dto.StatementResponse{
		WalletNumber: statement.WalletNumber,
		Balance:      statement.Balance,
		Transactions: transactions,
	})
}

// ApplyTransaction handles the POST /admin/wallets/:walletNumber/transaction endpoint
func (h *WalletHandler) ApplyTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.wallets.ApplyTransaction(c.Request.Context(), c.Param("walletNumber"), req.Kind, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, transactionToResponse(txn))
}

// LedgerSummary handles the GET /admin/ledger/summary endpoint
func (h *WalletHandler) LedgerSummary(c *gin.Context) {
	actor, err := h.accounts.GetByID(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	summary, err := h.wallets.Summarize(c.Request.Context(), actor)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LedgerSummaryResponse{
		TotalDeposited: summary.TotalDeposited,
		TotalWithdrawn: summary.TotalWithdrawn,
	})
}

// ledgerStatement authorizes the caller for ledger access and reads its wallet
func (h *WalletHandler) ledgerStatement(c *gin.Context) (*walletUseCase.Statement, error) {
	account, err := h.accounts.AuthorizeLedger(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		return nil, err
	}

	return h.wallets.GetStatement(c.Request.Context(), account.ID)
}

// transactionToResponse converts a ledger entry to its outward projection
func transactionToResponse(txn *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            txn.ID,
		Kind:          string(txn.Kind),
		Amount:        txn.Amount,
		ResultBalance: txn.ResultBalance,
		CreatedAt:     txn.CreatedAt.UTC().Format(time.RFC3339),
	}
}
