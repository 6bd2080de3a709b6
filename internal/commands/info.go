package commands

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/internal/version"
	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/metrics"
)

var startTime = time.Now()

// BotInfoCommand handles /봇정보: runtime and build information.
func BotInfoCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("botinfo")
	user := interactionUser(i)

	logger.Info("Bot info command executed", map[string]interface{}{
		"user_id":  user.DiscordID,
		"guild_id": i.GuildID,
	})

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	info := version.Get()
	buildTime := info.BuildTime
	if t, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
		buildTime = t.UTC().Format("02 Jan 2006 15:04 UTC")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "LoaHelper",
		Description: "로스트아크 원정대 도우미 봇입니다.",
		Color:       0x3498db, // Blue
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "버전", Value: fmt.Sprintf("`%s`", info.Version), Inline: true},
			{Name: "업타임", Value: formatUptime(time.Since(startTime)), Inline: true},
			{Name: "핑", Value: fmt.Sprintf("%dms", s.HeartbeatLatency().Milliseconds()), Inline: true},
			{Name: "메모리", Value: fmt.Sprintf("%.2f MB", float64(memStats.Alloc)/1024/1024), Inline: true},
			{Name: "고루틴", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Go", Value: runtime.Version(), Inline: true},
			{Name: "빌드 시각", Value: buildTime, Inline: true},
		},
	}

	metrics.CommandsTotal.WithLabelValues("botinfo", "ok").Inc()
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// formatUptime formats the uptime duration into a human-readable string
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	} else if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
