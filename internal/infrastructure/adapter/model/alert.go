package model

import (
	"time"
)

// Alert represents the database model for alerts. An empty Recipient means
// the alert is broadcast.
type Alert struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Message   string    `gorm:"not null;type:text"`
	Recipient string    `gorm:"index;size:150"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for Alert
func (Alert) TableName() string {
	return "alerts"
}
