package embed

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/database/models"
)

// Raid button custom ID prefixes; the recruitment UUID is appended after the
// colon and parsed back out by the interaction handler.
const (
	RaidJoinPrefix  = "raid_join:"
	RaidLeavePrefix = "raid_leave:"
)

// RaidRecruitmentEmbed renders one recruitment with its participant roster.
func RaidRecruitmentEmbed(recruitment *models.RaidRecruitment) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ %s (%s)", recruitment.RaidName, recruitment.Difficulty),
		Description: "버튼으로 참가하거나 취소할 수 있습니다.",
		Color:       0x2ecc71, // Green
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "LoaHelper | 레이드 모집",
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "💰 골드",
				Value:  fmt.Sprintf("%d", recruitment.Gold),
				Inline: true,
			},
			{
				Name:   "참가 인원",
				Value:  fmt.Sprintf("%d명", len(recruitment.Participants)),
				Inline: true,
			},
		},
	}

	if recruitment.MinItemLevel > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "최소 아이템 레벨",
			Value:  fmt.Sprintf("%d", recruitment.MinItemLevel),
			Inline: true,
		})
	}
	if recruitment.EndTime != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "모집 마감",
			Value:  recruitment.EndTime.Format("2006-01-02 15:04"),
			Inline: true,
		})
	}

	if len(recruitment.Participants) > 0 {
		var lines []string
		for _, p := range recruitment.Participants {
			lines = append(lines, fmt.Sprintf("• <@%s>", p.DiscordID))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "참가자",
			Value:  strings.Join(lines, "\n"),
			Inline: false,
		})
	}

	return embed
}

// RaidButtons builds the join/cancel button row for a recruitment.
func RaidButtons(recruitmentID string, open bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "참가",
					Style:    discordgo.SuccessButton,
					CustomID: RaidJoinPrefix + recruitmentID,
					Disabled: !open,
				},
				discordgo.Button{
					Label:    "취소",
					Style:    discordgo.DangerButton,
					CustomID: RaidLeavePrefix + recruitmentID,
					Disabled: !open,
				},
			},
		},
	}
}
