package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/database/models"
	"github.com/latehour/loahelper/pkg/database/repository"
	"github.com/latehour/loahelper/pkg/embed"
	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/metrics"
	"github.com/latehour/loahelper/pkg/raid"
	"gorm.io/gorm"
)

var raidRepo *repository.RaidRepository
var raidCatalog *raid.Catalog

// InitializeRaidCommands wires the raid commands with database and catalog
func InitializeRaidCommands(db *gorm.DB, catalog *raid.Catalog) {
	raidRepo = repository.NewRaidRepository(db)
	raidCatalog = catalog
}

// RaidRepo exposes the raid repository for the component handlers.
func RaidRepo() *repository.RaidRepository {
	return raidRepo
}

// AddRaidCommand handles /레이드추가: opens a recruitment for a catalog raid
// with join/cancel buttons.
func AddRaidCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("raid_add")
	user := interactionUser(i)

	raidName := commandOption(i, "레이드명")
	difficulty := commandOption(i, "난이도")
	if difficulty == "" {
		difficulty = "normal"
	}

	logger.Info("Raid add command executed", map[string]interface{}{
		"user_id":    user.DiscordID,
		"guild_id":   i.GuildID,
		"raid":       raidName,
		"difficulty": difficulty,
	})

	entry := raidCatalog.Find(raidName, difficulty)
	if entry == nil {
		metrics.CommandsTotal.WithLabelValues("raid_add", "error").Inc()
		respondText(s, i, fmt.Sprintf("알 수 없는 레이드입니다: **%s** (%s)\n사용 가능: %s",
			raidName, difficulty, strings.Join(raidCatalog.Names(), ", ")), true)
		return
	}

	recruitment := &models.RaidRecruitment{
		RaidName:     raidName,
		Difficulty:   difficulty,
		Gold:         entry.TotalGold(),
		MinItemLevel: entry.MinItemLevel,
		CreatedByID:  user.DiscordID,
	}
	if hours := commandIntOption(i, "마감시간"); hours > 0 {
		end := time.Now().Add(time.Duration(hours) * time.Hour)
		recruitment.EndTime = &end
	}

	if err := raidRepo.CreateRecruitment(recruitment); err != nil {
		metrics.CommandsTotal.WithLabelValues("raid_add", "error").Inc()
		logger.Error("Failed to create raid recruitment", err, map[string]interface{}{
			"user_id": user.DiscordID,
			"raid":    raidName,
		})
		respondEmbed(s, i, errorEmbeds.CommandError("레이드추가", err), true)
		return
	}

	metrics.CommandsTotal.WithLabelValues("raid_add", "ok").Inc()
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("레이드 **%s**가 추가되었습니다!", raidName),
			Embeds:     []*discordgo.MessageEmbed{embed.RaidRecruitmentEmbed(recruitment)},
			Components: embed.RaidButtons(recruitment.ID.String(), true),
		},
	})
}

// ListRaidsCommand handles /레이드목록: lists open recruitments.
func ListRaidsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("raid_list")
	user := interactionUser(i)

	logger.Info("Raid list command executed", map[string]interface{}{
		"user_id":  user.DiscordID,
		"guild_id": i.GuildID,
	})

	recruitments, err := raidRepo.GetOpenRecruitments()
	if err != nil {
		metrics.CommandsTotal.WithLabelValues("raid_list", "error").Inc()
		logger.Error("Failed to list raid recruitments", err, nil)
		respondEmbed(s, i, errorEmbeds.CommandError("레이드목록", err), true)
		return
	}

	metrics.CommandsTotal.WithLabelValues("raid_list", "ok").Inc()

	if len(recruitments) == 0 {
		respondText(s, i, "현재 참여 가능한 레이드가 없습니다.", true)
		return
	}

	var lines []string
	for _, r := range recruitments {
		line := fmt.Sprintf("• **%s** (%s) | 골드: %d | 참가: %d명", r.RaidName, r.Difficulty, r.Gold, len(r.Participants))
		if r.EndTime != nil {
			line += fmt.Sprintf(" | 마감: %s", r.EndTime.Format("01-02 15:04"))
		}
		lines = append(lines, line)
	}

	respondText(s, i, "**참여 가능한 레이드 목록**\n"+strings.Join(lines, "\n"), true)
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, e *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{e}}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// commandIntOption reads an integer option by name, zero when absent.
func commandIntOption(i *discordgo.InteractionCreate, name string) int {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return 0
}
