package logging

// DatabaseLogger wraps a base logger with database persistence
type DatabaseLogger struct {
	base       Logger
	component  string
	repository LogRepository
}

// NewDatabaseLogger creates a new database-backed logger
func NewDatabaseLogger(base Logger, component string, repository LogRepository) Logger {
	return &DatabaseLogger{
		base:       base,
		component:  component,
		repository: repository,
	}
}

// Info logs informational messages and persists to database
func (d *DatabaseLogger) Info(msg string, fields map[string]interface{}) {
	d.base.Info(msg, fields)
	d.persistLog("INFO", msg, nil, fields)
}

// Error logs error messages and persists to database
func (d *DatabaseLogger) Error(msg string, err error, fields map[string]interface{}) {
	d.base.Error(msg, err, fields)
	d.persistLog("ERROR", msg, err, fields)
}

// Warn logs warning messages and persists to database
func (d *DatabaseLogger) Warn(msg string, fields map[string]interface{}) {
	d.base.Warn(msg, fields)
	d.persistLog("WARN", msg, nil, fields)
}

// Debug logs debug messages and persists to database
func (d *DatabaseLogger) Debug(msg string, fields map[string]interface{}) {
	d.base.Debug(msg, fields)
	d.persistLog("DEBUG", msg, nil, fields)
}

// WithContext creates a new logger with additional context fields
func (d *DatabaseLogger) WithContext(ctx map[string]interface{}) Logger {
	return &DatabaseLogger{
		base:       d.base.WithContext(ctx),
		component:  d.component,
		repository: d.repository,
	}
}

// persistLog saves the log entry to the database
func (d *DatabaseLogger) persistLog(level, message string, err error, fields map[string]interface{}) {
	entry := LogEntry{
		Component: d.component,
		Level:     level,
		Message:   message,
		Fields:    fields,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	if guildID, ok := fields["guild_id"].(string); ok {
		entry.GuildID = guildID
	}
	if userID, ok := fields["user_id"].(string); ok {
		entry.UserID = userID
	}
	if channelID, ok := fields["channel_id"].(string); ok {
		entry.ChannelID = channelID
	}

	// Save asynchronously so command latency is not affected
	go func() {
		if saveErr := d.repository.SaveLog(entry); saveErr != nil {
			d.base.Error("Failed to persist log to database", saveErr, map[string]interface{}{
				"original_message": message,
				"original_level":   level,
			})
		}
	}()
}
