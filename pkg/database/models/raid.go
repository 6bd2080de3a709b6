package models

import (
	"time"

	"github.com/google/uuid"
)

// RaidRecruitment is an open raid party a user can join through buttons.
type RaidRecruitment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RaidName     string    `gorm:"index;not null"`
	Difficulty   string    `gorm:"not null;default:'normal'"`
	Gold         int       `gorm:"not null"`
	MinItemLevel int
	Status       string    `gorm:"index;not null;default:'open'"` // open, closed, cancelled
	EndTime      *time.Time
	CreatedByID  string    `gorm:"index;not null"` // Discord ID of the creator
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Participants []RaidParticipant `gorm:"foreignKey:RecruitmentID;constraint:OnDelete:CASCADE"`
}

// RaidParticipant links one Discord user to a recruitment. The (recruitment,
// user) pair is unique so joining twice is rejected at the store.
type RaidParticipant struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecruitmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_raid_participant"`
	DiscordID     string    `gorm:"not null;uniqueIndex:idx_raid_participant"`
	JoinedAt      time.Time `gorm:"autoCreateTime"`
}

// Recruitment status values.
const (
	RaidStatusOpen      = "open"
	RaidStatusClosed    = "closed"
	RaidStatusCancelled = "cancelled"
)
