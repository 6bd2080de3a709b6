package embed_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/embed"
	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExpeditions() []shared.Expedition {
	return []shared.Expedition{
		{
			ServerName:      "루페온",
			ExpeditionLevel: 180,
			CharacterImage:  "https://img.example/alice.png",
			Characters: []shared.Character{
				{CharacterName: "앨리스", CharacterClass: "버서커", ItemLevel: 1650, ServerName: "루페온", MainCharacter: true},
				{CharacterName: "밥", CharacterClass: "바드", ItemLevel: 1540, ServerName: "루페온"},
			},
		},
		{
			ServerName: "아만",
			Characters: []shared.Character{
				{CharacterName: "캐롤", CharacterClass: "소서리스", ItemLevel: 1444, ServerName: "아만", MainCharacter: true},
			},
		},
	}
}

func TestExpeditionPagesOnePerServer(t *testing.T) {
	builder := embed.CreateExpeditionEmbeds()
	pages := builder.ExpeditionPages("테스트 메시지", sampleExpeditions())
	require.Len(t, pages, 2)

	assert.Contains(t, pages[0].Title, "루페온")
	assert.Contains(t, pages[0].Description, "테스트 메시지")
	assert.Contains(t, pages[1].Title, "아만")
}

func TestExpeditionPageMarksMainCharacter(t *testing.T) {
	builder := embed.CreateExpeditionEmbeds()
	pages := builder.ExpeditionPages("msg", sampleExpeditions())
	require.Len(t, pages, 2)

	var characterField *discordgo.MessageEmbedField
	for _, f := range pages[0].Fields {
		if f.Name == "캐릭터 목록" {
			characterField = f
		}
	}
	require.NotNil(t, characterField)

	assert.Contains(t, characterField.Value, "⭐ **앨리스**")
	assert.Contains(t, characterField.Value, "└ 버서커, 1650")
	assert.NotContains(t, characterField.Value, "⭐ **밥**")
}

func TestExpeditionPageThumbnailOnlyWhenImagePresent(t *testing.T) {
	builder := embed.CreateExpeditionEmbeds()
	pages := builder.ExpeditionPages("msg", sampleExpeditions())
	require.Len(t, pages, 2)

	require.NotNil(t, pages[0].Thumbnail)
	assert.Equal(t, "https://img.example/alice.png", pages[0].Thumbnail.URL)
	assert.Nil(t, pages[1].Thumbnail)
}

func TestExpeditionPageEmptyRosterPlaceholder(t *testing.T) {
	builder := embed.CreateExpeditionEmbeds()
	pages := builder.ExpeditionPages("msg", []shared.Expedition{{ServerName: "루페온"}})
	require.Len(t, pages, 1)

	found := false
	for _, f := range pages[0].Fields {
		if f.Name == "캐릭터 목록" {
			assert.Equal(t, "등록된 캐릭터가 없습니다.", f.Value)
			found = true
		}
	}
	assert.True(t, found)
}

func TestNavigationButtonsDisabledStates(t *testing.T) {
	components := embed.NavigationButtons(false, true)
	require.Len(t, components, 1)

	row, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 2)

	prev, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, embed.NavPrevID, prev.CustomID)
	assert.True(t, prev.Disabled)

	next, ok := row.Components[1].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, embed.NavNextID, next.CustomID)
	assert.False(t, next.Disabled)
}
