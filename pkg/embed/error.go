package embed

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ErrorEmbeds implements ErrorEmbedBuilder. The basic builder methods come
// from ExpeditionEmbeds; only the failure rendering is specific.
type ErrorEmbeds struct {
	ExpeditionEmbeds
}

// NewErrorEmbedBuilder creates a new ErrorEmbeds instance
func NewErrorEmbedBuilder() ErrorEmbedBuilder {
	return &ErrorEmbeds{}
}

// CommandError creates an embed for command execution errors
func (e *ErrorEmbeds) CommandError(command string, err error) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("❌ %s", command),
		Description: "명령어 처리 중 오류가 발생했습니다.",
		Color:       0xff0000, // Red
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if err != nil {
		errorMsg := err.Error()
		if len(errorMsg) > 1000 {
			errorMsg = errorMsg[:997] + "..."
		}
		embed.Fields = []*discordgo.MessageEmbedField{
			{
				Name:   "오류 내용",
				Value:  errorMsg,
				Inline: false,
			},
		}
	}

	return embed
}
