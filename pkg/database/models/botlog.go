package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BotLog persists structured log entries for the centralized logging system
type BotLog struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Component string                 `gorm:"index"`
	Level     string                 `gorm:"index"`
	Message   string                 `gorm:"type:text"`
	Error     string                 `gorm:"type:text"`
	Fields    map[string]interface{} `gorm:"serializer:json"`
	GuildID   string                 `gorm:"index"`
	UserID    string                 `gorm:"index"`
	ChannelID string                 `gorm:"index"`
	Timestamp time.Time              `gorm:"index"`
	CreatedAt time.Time              `gorm:"autoCreateTime"`
	DeletedAt gorm.DeletedAt         `gorm:"index"`
}

// TableName specifies the table name for BotLog
func (BotLog) TableName() string {
	return "bot_logs"
}
