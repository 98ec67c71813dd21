package model

import (
	"time"
)

// Referral represents the database model for referral rows
type Referral struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID  uint64    `gorm:"uniqueIndex;not null"`
	Code       string    `gorm:"uniqueIndex;not null;size:16"`
	JoinedCode string    `gorm:"index;size:16"`
	CreatedAt  time.Time `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Referral
func (Referral) TableName() string {
	return "referrals"
}
