package model

import (
	"time"
)

// ContactMessage represents the database model for support messages
type ContactMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	AccountID uint64    `gorm:"not null;index"`
	Message   string    `gorm:"not null;type:text"`
	Response  string    `gorm:"type:text"`
	SentAt    time.Time `gorm:"not null;index"`

	Account Account `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}
