package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/latehour/loahelper/pkg/database/models"
	"gorm.io/gorm"
)

// RaidRepository handles database operations for raid recruitments
type RaidRepository struct {
	db *gorm.DB
}

func NewRaidRepository(db *gorm.DB) *RaidRepository {
	return &RaidRepository{db: db}
}

func (r *RaidRepository) CreateRecruitment(recruitment *models.RaidRecruitment) error {
	if recruitment.ID == uuid.Nil {
		recruitment.ID = uuid.New()
	}
	if recruitment.Status == "" {
		recruitment.Status = models.RaidStatusOpen
	}
	return r.db.Create(recruitment).Error
}

func (r *RaidRepository) GetRecruitmentByID(id uuid.UUID) (*models.RaidRecruitment, error) {
	var recruitment models.RaidRecruitment
	if err := r.db.Preload("Participants").First(&recruitment, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &recruitment, nil
}

// GetOpenRecruitments lists recruitments still accepting participants,
// oldest first.
func (r *RaidRepository) GetOpenRecruitments() ([]models.RaidRecruitment, error) {
	var recruitments []models.RaidRecruitment
	err := r.db.
		Preload("Participants").
		Where("status = ?", models.RaidStatusOpen).
		Order("created_at ASC").
		Find(&recruitments).Error
	if err != nil {
		return nil, err
	}
	return recruitments, nil
}

// AddParticipant joins a user to a recruitment. Returns false when the user
// is already in, without treating it as an error.
func (r *RaidRepository) AddParticipant(recruitmentID uuid.UUID, discordID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RaidParticipant{}).
		Where("recruitment_id = ? AND discord_id = ?", recruitmentID, discordID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	participant := models.RaidParticipant{
		ID:            uuid.New(),
		RecruitmentID: recruitmentID,
		DiscordID:     discordID,
	}
	if err := r.db.Create(&participant).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *RaidRepository) RemoveParticipant(recruitmentID uuid.UUID, discordID string) error {
	return r.db.
		Where("recruitment_id = ? AND discord_id = ?", recruitmentID, discordID).
		Delete(&models.RaidParticipant{}).Error
}

// CloseExpiredRecruitments flips open recruitments whose end time has passed
// to closed. Used by the periodic sweep.
func (r *RaidRepository) CloseExpiredRecruitments(now time.Time) (int64, error) {
	result := r.db.Model(&models.RaidRecruitment{}).
		Where("status = ? AND end_time IS NOT NULL AND end_time <= ?", models.RaidStatusOpen, now).
		Update("status", models.RaidStatusClosed)
	return result.RowsAffected, result.Error
}
