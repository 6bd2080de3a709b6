package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config carries every process-level setting. It is built once at startup and
// passed to component constructors; nothing reads the environment afterwards.
type Config struct {
	DiscordToken  string `env:"DISCORD_BOT_TOKEN" toml:"discord_token"`
	LostArkAPIKey string `env:"LOSTARK_API_KEY" toml:"lostark_api_key"`
	DatabaseURL   string `env:"DATABASE_URL" toml:"database_url"`
	RaidCatalog   string `env:"RAID_CATALOG_PATH" toml:"raid_catalog"`
	HealthAddr    string `env:"HEALTH_ADDR" toml:"health_addr"`
	LogLevel      string `env:"LOG_LEVEL" toml:"log_level"`
	PersistLogs   bool   `env:"PERSIST_LOGS" toml:"persist_logs"`
	GuildID       string `env:"GUILD_ID" toml:"guild_id"` // empty registers commands globally
}

// LoadConfig builds a Config from an optional config.toml plus the
// environment. Environment variables always win over the file; defaults fill
// whatever is left empty.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.toml"
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "lostark.db"
	}
	if cfg.RaidCatalog == "" {
		cfg.RaidCatalog = "raids.yaml"
	}
	if cfg.HealthAddr == "" {
		cfg.HealthAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is not set")
	}
	if cfg.LostArkAPIKey == "" {
		return nil, fmt.Errorf("LOSTARK_API_KEY is not set")
	}

	return cfg, nil
}
