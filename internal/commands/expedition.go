package commands

import (
	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/database/repository"
	"github.com/latehour/loahelper/pkg/embed"
	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/lostark"
	"github.com/latehour/loahelper/pkg/lostark/navigation"
	"github.com/latehour/loahelper/pkg/lostark/service"
	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/latehour/loahelper/pkg/metrics"
	"gorm.io/gorm"
)

var expeditionService lostark.ExpeditionServiceInterface
var navigationManager = navigation.GetNavigationManager()
var expeditionEmbeds = embed.CreateExpeditionEmbeds()
var errorEmbeds = embed.CreateErrorEmbeds()

// InitializeExpeditionCommands wires the expedition commands with database
// and roster client
func InitializeExpeditionCommands(db *gorm.DB, rosterClient lostark.RosterClientInterface) {
	expeditionRepo := repository.NewExpeditionRepository(db)
	svc := lostark.NewService(expeditionRepo, rosterClient)
	expeditionService = service.NewExpeditionService(svc)
}

// SearchExpeditionCommand handles /원정대검색: read-only lookup, visible to
// everyone in the channel.
func SearchExpeditionCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("expedition_search")
	characterName := commandOption(i, "캐릭터명")
	user := interactionUser(i)

	logger.Info("Expedition search command executed", map[string]interface{}{
		"user_id":   user.DiscordID,
		"guild_id":  i.GuildID,
		"character": characterName,
	})

	deferResponse(s, i, false)

	result, err := expeditionService.Dispatch(shared.CommandRequest{
		Kind:          shared.CommandSearch,
		User:          user,
		CharacterName: characterName,
	})
	if err != nil {
		metrics.CommandsTotal.WithLabelValues("expedition_search", "error").Inc()
		logger.Error("Expedition search failed", err, map[string]interface{}{
			"user_id":   user.DiscordID,
			"character": characterName,
		})
		followupError(s, i, "원정대 검색", shared.MessageFor(err), false)
		return
	}

	metrics.CommandsTotal.WithLabelValues("expedition_search", "ok").Inc()
	sendExpeditionPages(s, i, result, false)
}

// RegisterExpeditionCommand handles /원정대등록: persists the fetched roster,
// replacing whatever was stored. Only the caller sees the reply.
func RegisterExpeditionCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("expedition_register")
	characterName := commandOption(i, "캐릭터명")
	user := interactionUser(i)

	logger.Info("Expedition register command executed", map[string]interface{}{
		"user_id":   user.DiscordID,
		"guild_id":  i.GuildID,
		"character": characterName,
	})

	deferResponse(s, i, true)

	result, err := expeditionService.Dispatch(shared.CommandRequest{
		Kind:          shared.CommandRegister,
		User:          user,
		CharacterName: characterName,
	})
	if err != nil {
		metrics.CommandsTotal.WithLabelValues("expedition_register", "error").Inc()
		logger.Error("Expedition register failed", err, map[string]interface{}{
			"user_id":   user.DiscordID,
			"character": characterName,
		})
		followupError(s, i, "원정대 등록", shared.MessageFor(err), true)
		return
	}

	metrics.CommandsTotal.WithLabelValues("expedition_register", "ok").Inc()
	followupText(s, i, "원정대 정보가 등록되었습니다. ("+result.Message+")", true)
}

// MyExpeditionsCommand handles /내원정대: shows the caller's stored
// expeditions without calling the remote API.
func MyExpeditionsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	logger := logging.GetGlobalLoggerFactory().CreateCommandLogger("expedition_saved")
	user := interactionUser(i)

	logger.Info("Saved expeditions command executed", map[string]interface{}{
		"user_id":  user.DiscordID,
		"guild_id": i.GuildID,
	})

	deferResponse(s, i, true)

	result, err := expeditionService.Dispatch(shared.CommandRequest{
		Kind: shared.CommandListSaved,
		User: user,
	})
	if err != nil {
		metrics.CommandsTotal.WithLabelValues("expedition_saved", "error").Inc()
		logger.Error("Saved expeditions lookup failed", err, map[string]interface{}{
			"user_id": user.DiscordID,
		})
		followupError(s, i, "내 원정대", shared.MessageFor(err), true)
		return
	}

	metrics.CommandsTotal.WithLabelValues("expedition_saved", "ok").Inc()
	sendExpeditionPages(s, i, result, true)
}

// sendExpeditionPages renders the sync result as paged embeds and registers
// navigation when there is more than one page.
func sendExpeditionPages(s *discordgo.Session, i *discordgo.InteractionCreate, result *shared.ExpeditionSyncResult, ephemeral bool) {
	if len(result.Expeditions) == 0 {
		followupText(s, i, result.Message, ephemeral)
		return
	}

	pages := expeditionEmbeds.ExpeditionPages(result.Message, result.Expeditions)
	paginator := navigation.NewPaginator(pages)

	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{paginator.Current()},
	}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	if paginator.Len() > 1 {
		params.Components = embed.NavigationButtons(paginator.CanRetreat(), paginator.CanAdvance())
	}

	msg, err := s.FollowupMessageCreate(i.Interaction, true, params)
	if err != nil {
		return
	}

	if paginator.Len() > 1 {
		navigationManager.Register(msg.ID, paginator)
	}
}

// deferResponse acknowledges the interaction so the sync can take its time.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) {
	data := &discordgo.InteractionResponseData{}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: data,
	})
}

func followupText(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	params := &discordgo.WebhookParams{Content: content}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	s.FollowupMessageCreate(i.Interaction, true, params)
}

// followupError replies with a red error embed carrying the fixed status
// message for the failure.
func followupError(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string, ephemeral bool) {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{errorEmbeds.Error(title, description)},
	}
	if ephemeral {
		params.Flags = discordgo.MessageFlagsEphemeral
	}
	s.FollowupMessageCreate(i.Interaction, true, params)
}

// commandOption reads a string option by name, empty when absent.
func commandOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// interactionUser extracts the invoking user for both guild and DM contexts.
func interactionUser(i *discordgo.InteractionCreate) shared.DiscordUser {
	var u *discordgo.User
	if i.Member != nil {
		u = i.Member.User
	} else {
		u = i.User
	}
	if u == nil {
		return shared.DiscordUser{}
	}
	return shared.DiscordUser{
		DiscordID:     u.ID,
		DiscordName:   u.Username,
		DiscordAvatar: u.AvatarURL(""),
	}
}
