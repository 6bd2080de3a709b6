package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/latehour/loahelper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray config.toml
// leaks in.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DISCORD_BOT_TOKEN", "token-123")
	t.Setenv("LOSTARK_API_KEY", "key-456")
	t.Setenv("DATABASE_URL", "postgres://localhost/loahelper")
	t.Setenv("GUILD_ID", "guild-789")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, "key-456", cfg.LostArkAPIKey)
	assert.Equal(t, "postgres://localhost/loahelper", cfg.DatabaseURL)
	assert.Equal(t, "guild-789", cfg.GuildID)

	// Defaults fill whatever was not provided.
	assert.Equal(t, "raids.yaml", cfg.RaidCatalog)
	assert.Equal(t, ":8080", cfg.HealthAddr)
	assert.Equal(t, "info", cfg.LogLevel)
}

// unsetEnv clears a variable for the test while restoring it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadConfigMissingToken(t *testing.T) {
	chdirTemp(t)
	unsetEnv(t, "DISCORD_BOT_TOKEN")
	t.Setenv("LOSTARK_API_KEY", "key-456")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "DISCORD_BOT_TOKEN")
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DISCORD_BOT_TOKEN", "token-123")
	unsetEnv(t, "LOSTARK_API_KEY")

	_, err := config.LoadConfig()
	assert.ErrorContains(t, err, "LOSTARK_API_KEY")
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	dir := chdirTemp(t)

	tomlBody := `
discord_token = "file-token"
lostark_api_key = "file-key"
database_url = "file.db"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(tomlBody), 0o644))

	t.Setenv("DISCORD_BOT_TOKEN", "env-token")
	unsetEnv(t, "LOSTARK_API_KEY")
	unsetEnv(t, "DATABASE_URL")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	// Environment wins over the file; file fills the rest.
	assert.Equal(t, "env-token", cfg.DiscordToken)
	assert.Equal(t, "file-key", cfg.LostArkAPIKey)
	assert.Equal(t, "file.db", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigDefaultDatabase(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DISCORD_BOT_TOKEN", "token-123")
	t.Setenv("LOSTARK_API_KEY", "key-456")
	unsetEnv(t, "DATABASE_URL")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "lostark.db", cfg.DatabaseURL)
}
