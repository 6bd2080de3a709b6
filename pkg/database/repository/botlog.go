package repository

import (
	"github.com/latehour/loahelper/pkg/database/models"
	"gorm.io/gorm"
)

// BotLogRepository persists structured log entries
type BotLogRepository struct {
	db *gorm.DB
}

func NewBotLogRepository(db *gorm.DB) *BotLogRepository {
	return &BotLogRepository{db: db}
}

func (r *BotLogRepository) SaveLog(entry *models.BotLog) error {
	return r.db.Create(entry).Error
}
