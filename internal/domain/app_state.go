package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AppState is the single table the service persists; it only backs health probes.
type AppState struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Key       string         `gorm:"column:state_key;uniqueIndex;not null" json:"key"`
	Payload   datatypes.JSON `gorm:"column:payload" json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (AppState) TableName() string { return "app_state" }
