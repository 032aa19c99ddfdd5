package dbmodels

import (
	"time"
)

// ClientState is one persisted key of the local session.
type ClientState struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time
}

func (ClientState) TableName() string {
	return "client_state"
}
