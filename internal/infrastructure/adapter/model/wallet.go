package model

import (
	"time"
)

// Wallet represents the database model for wallets. Balance is stored in
// cents and this row is the only place it lives.
type Wallet struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID uint64    `gorm:"uniqueIndex;not null"`
	Number    string    `gorm:"uniqueIndex;not null;size:16"`
	Balance   int64     `gorm:"not null"` // Balance in cents
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
