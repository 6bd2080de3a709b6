package handlers

import (
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/latehour/loahelper/internal/commands"
	"github.com/latehour/loahelper/pkg/database/models"
	"github.com/latehour/loahelper/pkg/embed"
	"github.com/latehour/loahelper/pkg/logging"
	"github.com/latehour/loahelper/pkg/lostark/navigation"
)

// handleNavigation steps the paginator attached to the message and swaps the
// embed in place.
func handleNavigation(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	logger := logging.GetGlobalLoggerFactory().CreateLogger("navigation")

	paginator, ok := navigation.GetNavigationManager().Get(i.Message.ID)
	if !ok {
		// Stale buttons from before a restart; acknowledge and move on.
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
		return
	}

	if customID == embed.NavNextID {
		paginator.Advance()
	} else {
		paginator.Retreat()
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{paginator.Current()},
			Components: embed.NavigationButtons(paginator.CanRetreat(), paginator.CanAdvance()),
		},
	})
	if err != nil {
		logger.Error("Failed to update paginated message", err, map[string]interface{}{
			"message_id": i.Message.ID,
			"page":       paginator.Index(),
		})
	}
}

func handleRaidJoin(s *discordgo.Session, i *discordgo.InteractionCreate, rawID string) {
	logger := logging.GetGlobalLoggerFactory().CreateLogger("raid_join")
	user := componentUser(i)

	recruitmentID, err := uuid.Parse(rawID)
	if err != nil {
		respondEphemeral(s, i, "잘못된 레이드 모집입니다.")
		return
	}

	joined, err := commands.RaidRepo().AddParticipant(recruitmentID, user)
	if err != nil {
		logger.Error("Failed to join raid", err, map[string]interface{}{
			"recruitment_id": rawID,
			"user_id":        user,
		})
		respondEphemeral(s, i, "레이드 참가에 실패했습니다.")
		return
	}
	if !joined {
		respondEphemeral(s, i, "이미 참가 중인 레이드입니다.")
		return
	}

	respondEphemeral(s, i, "레이드에 참가했습니다!")
	refreshRecruitmentMessage(s, i, recruitmentID)
}

func handleRaidLeave(s *discordgo.Session, i *discordgo.InteractionCreate, rawID string) {
	logger := logging.GetGlobalLoggerFactory().CreateLogger("raid_leave")
	user := componentUser(i)

	recruitmentID, err := uuid.Parse(rawID)
	if err != nil {
		respondEphemeral(s, i, "잘못된 레이드 모집입니다.")
		return
	}

	if err := commands.RaidRepo().RemoveParticipant(recruitmentID, user); err != nil {
		logger.Error("Failed to leave raid", err, map[string]interface{}{
			"recruitment_id": rawID,
			"user_id":        user,
		})
		respondEphemeral(s, i, "레이드 참가 취소에 실패했습니다.")
		return
	}

	respondEphemeral(s, i, "레이드 참가를 취소했습니다.")
	refreshRecruitmentMessage(s, i, recruitmentID)
}

// refreshRecruitmentMessage re-renders the recruitment embed on the original
// message so the participant roster stays current. Best effort.
func refreshRecruitmentMessage(s *discordgo.Session, i *discordgo.InteractionCreate, recruitmentID uuid.UUID) {
	recruitment, err := commands.RaidRepo().GetRecruitmentByID(recruitmentID)
	if err != nil || recruitment == nil {
		return
	}

	embeds := []*discordgo.MessageEmbed{embed.RaidRecruitmentEmbed(recruitment)}
	components := embed.RaidButtons(recruitment.ID.String(), recruitment.Status == models.RaidStatusOpen)
	s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         i.Message.ID,
		Channel:    i.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	})
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// componentUser returns the discord ID of whoever clicked the button.
func componentUser(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
