package embed

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/lostark/shared"
)

// ExpeditionEmbeds implements ExpeditionEmbedBuilder. Pure rendering, no I/O.
type ExpeditionEmbeds struct{}

// NewExpeditionEmbedBuilder creates a new ExpeditionEmbeds instance
func NewExpeditionEmbedBuilder() ExpeditionEmbedBuilder {
	return &ExpeditionEmbeds{}
}

// ExpeditionPages converts expeditions into one embed page per server, in
// input order. The main character is starred; every other character shows
// class and item level.
func (e *ExpeditionEmbeds) ExpeditionPages(message string, expeditions []shared.Expedition) []*discordgo.MessageEmbed {
	pages := make([]*discordgo.MessageEmbed, 0, len(expeditions))

	for _, exp := range expeditions {
		embed := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("**%s** 원정대 정보", exp.ServerName),
			Description: fmt.Sprintf("> %s\n", message),
			Color:       0x3498db, // Blue
			Timestamp:   time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "LoaHelper | 원정대 정보",
			},
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:   "원정대 레벨",
					Value:  fmt.Sprintf("**%d**", exp.ExpeditionLevel),
					Inline: true,
				},
				{
					Name:   "서버",
					Value:  fmt.Sprintf("**%s**", exp.ServerName),
					Inline: true,
				},
			},
		}

		if exp.CharacterImage != "" {
			embed.Thumbnail = &discordgo.MessageEmbedThumbnail{
				URL: exp.CharacterImage,
			}
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "캐릭터 목록",
			Value:  formatCharacterList(exp.Characters),
			Inline: false,
		})

		pages = append(pages, embed)
	}

	return pages
}

// formatCharacterList renders the roster lines for one expedition. An empty
// roster should not occur, but renders a placeholder instead of failing.
func formatCharacterList(characters []shared.Character) string {
	if len(characters) == 0 {
		return "등록된 캐릭터가 없습니다."
	}

	var lines []string
	for _, char := range characters {
		marker := ""
		if char.MainCharacter {
			marker = "⭐ "
		}
		lines = append(lines, fmt.Sprintf("%s**%s**\n└ %s, %d", marker, char.CharacterName, char.CharacterClass, char.ItemLevel))
	}

	return strings.Join(lines, "\n\n")
}

// Navigation component custom IDs, matched by the interaction handler.
const (
	NavPrevID = "expedition_prev"
	NavNextID = "expedition_next"
)

// NavigationButtons builds the prev/next button row with disabled affordances
// mirroring the paginator's availability.
func NavigationButtons(canRetreat, canAdvance bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "이전",
					Style:    discordgo.SecondaryButton,
					CustomID: NavPrevID,
					Disabled: !canRetreat,
				},
				discordgo.Button{
					Label:    "다음",
					Style:    discordgo.SecondaryButton,
					CustomID: NavNextID,
					Disabled: !canAdvance,
				},
			},
		},
	}
}

// Success creates a standard success embed
func (e *ExpeditionEmbeds) Success(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0x00ff00, // Green
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Error creates a standard error embed
func (e *ExpeditionEmbeds) Error(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0xff0000, // Red
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Info creates an info embed
func (e *ExpeditionEmbeds) Info(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0x7289da, // Discord blurple
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// Warning creates a warning embed
func (e *ExpeditionEmbeds) Warning(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       0xffaa00, // Orange
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}
