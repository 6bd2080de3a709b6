package models

import (
	"time"

	"github.com/google/uuid"
)

// Expedition is one server's roster for a user. Ownership is unidirectional:
// Expedition points at its User by key, ExpeditionCharacter points at its
// Expedition by key, and neither child holds a back-reference object.
type Expedition struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null"`
	ServerName      string    `gorm:"index;not null"`
	ExpeditionLevel int       `gorm:"not null"`
	CharacterImage  string
	Position        int       `gorm:"not null"` // first-seen server order within one sync
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Characters []ExpeditionCharacter `gorm:"foreignKey:ExpeditionID;constraint:OnDelete:CASCADE"`
}

// ExpeditionCharacter is one roster member belonging to an Expedition.
type ExpeditionCharacter struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpeditionID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CharacterName  string    `gorm:"not null"`
	CharacterClass string    `gorm:"not null"`
	ItemLevel      int       `gorm:"not null"`
	ServerName     string    `gorm:"not null"`
	MainCharacter  bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}
