package model

import (
	"time"
)

// Account represents the database model for accounts
type Account struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	Username           string    `gorm:"uniqueIndex;not null;size:150"`
	Email              string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash       string    `gorm:"not null;size:255"`
	FirstName          string    `gorm:"size:150"`
	LastName           string    `gorm:"size:150"`
	Phone              string    `gorm:"size:50"`
	Status             string    `gorm:"not null;size:20;index"`
	Plan               *int      `gorm:""`
	ReferralCode       string    `gorm:"uniqueIndex;not null;size:16"`
	JoinedReferralCode string    `gorm:"index;size:16"`
	IsAdmin            bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}
