package shared

import (
	"github.com/latehour/loahelper/pkg/database/models"
)

// ExpeditionMapper handles conversion between database and shared types
type ExpeditionMapper struct{}

// NewExpeditionMapper creates a new expedition mapper
func NewExpeditionMapper() *ExpeditionMapper {
	return &ExpeditionMapper{}
}

// ToShared converts database expeditions to shared expeditions
func (m *ExpeditionMapper) ToShared(dbExpeditions []models.Expedition) []Expedition {
	if len(dbExpeditions) == 0 {
		return nil
	}

	result := make([]Expedition, 0, len(dbExpeditions))
	for _, dbExp := range dbExpeditions {
		characters := make([]Character, 0, len(dbExp.Characters))
		for _, dbChar := range dbExp.Characters {
			characters = append(characters, Character{
				CharacterName:  dbChar.CharacterName,
				CharacterClass: dbChar.CharacterClass,
				ItemLevel:      dbChar.ItemLevel,
				ServerName:     dbChar.ServerName,
				MainCharacter:  dbChar.MainCharacter,
			})
		}

		result = append(result, Expedition{
			ServerName:      dbExp.ServerName,
			ExpeditionLevel: dbExp.ExpeditionLevel,
			CharacterImage:  dbExp.CharacterImage,
			Characters:      characters,
		})
	}

	return result
}

// ToDatabase converts shared expeditions to database expeditions. IDs and
// foreign keys are assigned by the repository at insert time.
func (m *ExpeditionMapper) ToDatabase(expeditions []Expedition) []models.Expedition {
	if len(expeditions) == 0 {
		return nil
	}

	result := make([]models.Expedition, 0, len(expeditions))
	for _, exp := range expeditions {
		characters := make([]models.ExpeditionCharacter, 0, len(exp.Characters))
		for _, char := range exp.Characters {
			characters = append(characters, models.ExpeditionCharacter{
				CharacterName:  char.CharacterName,
				CharacterClass: char.CharacterClass,
				ItemLevel:      char.ItemLevel,
				ServerName:     char.ServerName,
				MainCharacter:  char.MainCharacter,
			})
		}

		result = append(result, models.Expedition{
			ServerName:      exp.ServerName,
			ExpeditionLevel: exp.ExpeditionLevel,
			CharacterImage:  exp.CharacterImage,
			Characters:      characters,
		})
	}

	return result
}

// UserToDatabase converts a Discord user identity to its database model
func (m *ExpeditionMapper) UserToDatabase(user DiscordUser) models.User {
	return models.User{
		DiscordID:     user.DiscordID,
		DiscordName:   user.DiscordName,
		DiscordAvatar: user.DiscordAvatar,
	}
}
