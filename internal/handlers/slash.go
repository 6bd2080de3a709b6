package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/internal/commands"
	"github.com/latehour/loahelper/pkg/embed"
	"github.com/latehour/loahelper/pkg/logging"
)

// commandDefinitions declares every slash command the bot serves.
var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        "원정대검색",
		Description: "특정 캐릭터명을 기반으로 원정대 정보를 검색하고 표시합니다.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "캐릭터명",
				Description: "검색할 캐릭터 이름",
				Required:    true,
			},
		},
	},
	{
		Name:        "원정대등록",
		Description: "특정 캐릭터명을 기반으로 원정대 정보를 DB에 저장합니다. (본인만 확인 가능)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "캐릭터명",
				Description: "등록할 캐릭터 이름",
				Required:    true,
			},
		},
	},
	{
		Name:        "내원정대",
		Description: "DB에 저장된 나의 원정대 정보를 확인합니다. (본인만 확인 가능)",
	},
	{
		Name:        "레이드추가",
		Description: "새로운 레이드 모집을 추가합니다.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "레이드명",
				Description: "레이드 이름",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "난이도",
				Description: "난이도 (normal, hard)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "마감시간",
				Description: "모집 마감까지 남은 시간 (시간 단위)",
				Required:    false,
			},
		},
	},
	{
		Name:        "레이드목록",
		Description: "현재 참여 가능한 레이드 목록을 확인합니다.",
	},
	{
		Name:        "떠돌이상인",
		Description: "떠돌이상인 정보를 표시합니다.",
	},
	{
		Name:        "봇정보",
		Description: "봇의 버전과 상태를 표시합니다.",
	},
}

// RegisterCommands overwrites the application command set. An empty guildID
// registers globally.
func RegisterCommands(s *discordgo.Session, guildID string) error {
	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, commandDefinitions)
	return err
}

// InteractionHandler routes every InteractionCreate event to the matching
// command or component handler.
func InteractionHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		handleComponent(s, i)
	}
}

func handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	switch name {
	case "원정대검색":
		commands.SearchExpeditionCommand(s, i)
	case "원정대등록":
		commands.RegisterExpeditionCommand(s, i)
	case "내원정대":
		commands.MyExpeditionsCommand(s, i)
	case "레이드추가":
		commands.AddRaidCommand(s, i)
	case "레이드목록":
		commands.ListRaidsCommand(s, i)
	case "떠돌이상인":
		commands.MerchantCommand(s, i)
	case "봇정보":
		commands.BotInfoCommand(s, i)
	default:
		logger := logging.GetGlobalLoggerFactory().CreateLogger("handlers")
		logger.Warn("Unknown slash command", map[string]interface{}{
			"command":  name,
			"guild_id": i.GuildID,
		})
	}
}

func handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == embed.NavPrevID || customID == embed.NavNextID:
		handleNavigation(s, i, customID)
	case strings.HasPrefix(customID, embed.RaidJoinPrefix):
		handleRaidJoin(s, i, strings.TrimPrefix(customID, embed.RaidJoinPrefix))
	case strings.HasPrefix(customID, embed.RaidLeavePrefix):
		handleRaidLeave(s, i, strings.TrimPrefix(customID, embed.RaidLeavePrefix))
	}
}
