package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	WalletID      uint64    `gorm:"not null;index"`
	Kind          string    `gorm:"not null;size:20"`
	Amount        string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	ResultBalance string    `gorm:"size:50"`
	CreatedAt     time.Time `gorm:"not null;index"`

	Wallet Wallet `gorm:"foreignKey:WalletID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
