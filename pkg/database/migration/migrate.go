package migration

import (
	"log"

	"github.com/latehour/loahelper/pkg/database/models"
	"gorm.io/gorm"
)

func RunMigration(db *gorm.DB) error {

	log.Println("Running database migrations...")

	// Auto-migrate the models
	if err := db.AutoMigrate(
		&models.User{},
		&models.Expedition{},
		&models.ExpeditionCharacter{},
		&models.RaidRecruitment{},
		&models.RaidParticipant{},
		&models.BotLog{},
	); err != nil {
		return err
	}

	log.Println("Migrations completed successfully!")
	return nil
}
