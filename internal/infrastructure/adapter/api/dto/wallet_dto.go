package dto

// BalanceResponse represents the API response for a wallet balance
type BalanceResponse struct {
	WalletNumber string `json:"walletNumber"`
	Balance      string `json:"balance"`
}

// TransactionRequest represents the API request for applying a transaction
type TransactionRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=deposit withdraw"`
	Amount string `json:"amount" binding:"required"`
}

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	ID            uint64 `json:"id"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	ResultBalance string `json:"resultBalance"`
	CreatedAt     string `json:"createdAt"`
}

// StatementResponse represents the wallet together with its history
type StatementResponse struct {
	WalletNumber string                `json:"walletNumber"`
	Balance      string                `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}

// LedgerSummaryResponse represents the ledger totals for the admin dashboard
type LedgerSummaryResponse struct {
	TotalDeposited string `json:"totalDeposited"`
	TotalWithdrawn string `json:"totalWithdrawn"`
}
