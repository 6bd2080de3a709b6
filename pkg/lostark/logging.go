package lostark

import (
	"time"

	"github.com/google/uuid"
	"github.com/latehour/loahelper/pkg/database/models"
	"github.com/latehour/loahelper/pkg/database/repository"
	"github.com/latehour/loahelper/pkg/logging"
)

// LogRepositoryAdapter adapts BotLogRepository to implement logging.LogRepository
type LogRepositoryAdapter struct {
	botLogRepo *repository.BotLogRepository
}

// NewLogRepositoryAdapter creates a new LogRepositoryAdapter
func NewLogRepositoryAdapter(botLogRepo *repository.BotLogRepository) logging.LogRepository {
	return &LogRepositoryAdapter{
		botLogRepo: botLogRepo,
	}
}

// SaveLog implements logging.LogRepository interface
func (l *LogRepositoryAdapter) SaveLog(entry logging.LogEntry) error {
	botLog := &models.BotLog{
		ID:        uuid.New(),
		Component: entry.Component,
		Level:     entry.Level,
		Message:   entry.Message,
		Error:     entry.Error,
		Fields:    entry.Fields,
		GuildID:   entry.GuildID,
		UserID:    entry.UserID,
		ChannelID: entry.ChannelID,
		Timestamp: time.Now(),
	}

	return l.botLogRepo.SaveLog(botLog)
}
