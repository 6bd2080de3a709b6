package repository

import (
	"github.com/google/uuid"
	"github.com/latehour/loahelper/pkg/database/models"
	"gorm.io/gorm"
)

// ExpeditionRepository handles database operations for expedition data
type ExpeditionRepository struct {
	db *gorm.DB
}

func NewExpeditionRepository(db *gorm.DB) *ExpeditionRepository {
	return &ExpeditionRepository{db: db}
}

// UpsertExpeditions replaces every stored expedition for the given Discord
// user with the provided set, in one transaction. The user row is created on
// first sight; existing rows keep their name/avatar untouched. Reconciliation
// is a full delete-then-insert, so concurrent registrations for the same user
// resolve to whichever transaction commits last.
func (r *ExpeditionRepository) UpsertExpeditions(user models.User, expeditions []models.Expedition) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		dbUser, err := r.findOrCreateUser(tx, user)
		if err != nil {
			return err
		}

		// Characters first, keyed through their expeditions, so the delete
		// does not depend on driver-level cascade support.
		sub := tx.Model(&models.Expedition{}).Select("id").Where("user_id = ?", dbUser.ID)
		if err := tx.Where("expedition_id IN (?)", sub).Delete(&models.ExpeditionCharacter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", dbUser.ID).Delete(&models.Expedition{}).Error; err != nil {
			return err
		}

		for i := range expeditions {
			expedition := expeditions[i]
			expedition.ID = uuid.New()
			expedition.UserID = dbUser.ID
			expedition.Position = i

			characters := expedition.Characters
			expedition.Characters = nil
			if err := tx.Create(&expedition).Error; err != nil {
				return err
			}

			for j := range characters {
				characters[j].ID = uuid.New()
				characters[j].ExpeditionID = expedition.ID
			}
			if len(characters) > 0 {
				if err := tx.Create(&characters).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// GetExpeditionsByDiscordID returns the stored expeditions for a Discord user
// with characters preloaded, servers in registration order and characters
// sorted by item level descending.
func (r *ExpeditionRepository) GetExpeditionsByDiscordID(discordID string) ([]models.Expedition, error) {
	var user models.User
	if err := r.db.Where("discord_id = ?", discordID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var expeditions []models.Expedition
	err := r.db.
		Preload("Characters", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_level DESC")
		}).
		Where("user_id = ?", user.ID).
		Order("position ASC").
		Find(&expeditions).Error
	if err != nil {
		return nil, err
	}
	return expeditions, nil
}

// GetUserByDiscordID looks up a user row, returning nil when absent.
func (r *ExpeditionRepository) GetUserByDiscordID(discordID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("discord_id = ?", discordID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *ExpeditionRepository) findOrCreateUser(tx *gorm.DB, user models.User) (*models.User, error) {
	var dbUser models.User
	err := tx.Where("discord_id = ?", user.DiscordID).First(&dbUser).Error
	if err == nil {
		return &dbUser, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	dbUser = models.User{
		ID:            uuid.New(),
		DiscordID:     user.DiscordID,
		DiscordName:   user.DiscordName,
		DiscordAvatar: user.DiscordAvatar,
	}
	if err := tx.Create(&dbUser).Error; err != nil {
		return nil, err
	}
	return &dbUser, nil
}
