package repository_test

import (
	"fmt"
	"testing"

	"github.com/latehour/loahelper/pkg/database"
	"github.com/latehour/loahelper/pkg/database/migration"
	"github.com/latehour/loahelper/pkg/database/models"
	"github.com/latehour/loahelper/pkg/database/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var memoryDBCounter int

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	memoryDBCounter++
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", memoryDBCounter)
	db, err := database.NewGormDB(dsn)
	require.NoError(t, err)
	require.NoError(t, migration.RunMigration(db))
	return db
}

func testUser(discordID string) models.User {
	return models.User{
		DiscordID:     discordID,
		DiscordName:   "tester",
		DiscordAvatar: "https://cdn.example/avatar.png",
	}
}

func testExpeditions() []models.Expedition {
	return []models.Expedition{
		{
			ServerName:      "루페온",
			ExpeditionLevel: 180,
			Characters: []models.ExpeditionCharacter{
				{CharacterName: "앨리스", CharacterClass: "버서커", ItemLevel: 1650, ServerName: "루페온", MainCharacter: true},
				{CharacterName: "밥", CharacterClass: "바드", ItemLevel: 1540, ServerName: "루페온"},
			},
		},
		{
			ServerName:      "아만",
			ExpeditionLevel: 120,
			Characters: []models.ExpeditionCharacter{
				{CharacterName: "캐롤", CharacterClass: "소서리스", ItemLevel: 1444, ServerName: "아만", MainCharacter: true},
			},
		},
	}
}

func TestUpsertThenListRoundTrip(t *testing.T) {
	repo := repository.NewExpeditionRepository(newTestDB(t))

	require.NoError(t, repo.UpsertExpeditions(testUser("100"), testExpeditions()))

	stored, err := repo.GetExpeditionsByDiscordID("100")
	require.NoError(t, err)
	require.Len(t, stored, 2)

	// Registration order survives the round trip.
	assert.Equal(t, "루페온", stored[0].ServerName)
	assert.Equal(t, "아만", stored[1].ServerName)
	assert.Equal(t, 0, stored[0].Position)
	assert.Equal(t, 1, stored[1].Position)

	require.Len(t, stored[0].Characters, 2)
	assert.Equal(t, "앨리스", stored[0].Characters[0].CharacterName)
	assert.True(t, stored[0].Characters[0].MainCharacter)
	assert.Equal(t, 1540, stored[0].Characters[1].ItemLevel)
}

func TestUpsertReplacesPreviousSet(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewExpeditionRepository(db)

	require.NoError(t, repo.UpsertExpeditions(testUser("100"), testExpeditions()))

	replacement := []models.Expedition{
		{
			ServerName:      "카단",
			ExpeditionLevel: 90,
			Characters: []models.ExpeditionCharacter{
				{CharacterName: "데이브", CharacterClass: "건슬링어", ItemLevel: 1500, ServerName: "카단", MainCharacter: true},
			},
		},
	}
	require.NoError(t, repo.UpsertExpeditions(testUser("100"), replacement))

	stored, err := repo.GetExpeditionsByDiscordID("100")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "카단", stored[0].ServerName)

	// No orphaned characters survive the replacement.
	var characterCount int64
	require.NoError(t, db.Model(&models.ExpeditionCharacter{}).Count(&characterCount).Error)
	assert.Equal(t, int64(1), characterCount)
}

func TestUpsertIsIdempotent(t *testing.T) {
	repo := repository.NewExpeditionRepository(newTestDB(t))

	require.NoError(t, repo.UpsertExpeditions(testUser("100"), testExpeditions()))
	require.NoError(t, repo.UpsertExpeditions(testUser("100"), testExpeditions()))

	stored, err := repo.GetExpeditionsByDiscordID("100")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestUpsertDoesNotLeakAcrossUsers(t *testing.T) {
	repo := repository.NewExpeditionRepository(newTestDB(t))

	require.NoError(t, repo.UpsertExpeditions(testUser("100"), testExpeditions()))
	require.NoError(t, repo.UpsertExpeditions(testUser("200"), testExpeditions()[:1]))

	first, err := repo.GetExpeditionsByDiscordID("100")
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := repo.GetExpeditionsByDiscordID("200")
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestUserRowIsCreateOnly(t *testing.T) {
	repo := repository.NewExpeditionRepository(newTestDB(t))

	require.NoError(t, repo.UpsertExpeditions(testUser("100"), testExpeditions()))

	renamed := testUser("100")
	renamed.DiscordName = "renamed"
	require.NoError(t, repo.UpsertExpeditions(renamed, testExpeditions()))

	user, err := repo.GetUserByDiscordID("100")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "tester", user.DiscordName)
}

func TestGetExpeditionsUnknownUser(t *testing.T) {
	repo := repository.NewExpeditionRepository(newTestDB(t))

	stored, err := repo.GetExpeditionsByDiscordID("999")
	require.NoError(t, err)
	assert.Nil(t, stored)

	user, err := repo.GetUserByDiscordID("999")
	require.NoError(t, err)
	assert.Nil(t, user)
}
