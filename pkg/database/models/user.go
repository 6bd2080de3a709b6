package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a Discord account that registered expedition data.
// IDs are assigned by the repository with uuid.New() so the schema works on
// both PostgreSQL and SQLite.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DiscordID     string    `gorm:"uniqueIndex;not null"`
	DiscordName   string    `gorm:"not null"`
	DiscordAvatar string
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}
