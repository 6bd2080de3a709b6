package embed

import (
	"github.com/bwmarrin/discordgo"
	"github.com/latehour/loahelper/pkg/lostark/shared"
)

// EmbedBuilder provides basic embed creation functionality
type EmbedBuilder interface {
	Success(title, description string) *discordgo.MessageEmbed
	Error(title, description string) *discordgo.MessageEmbed
	Info(title, description string) *discordgo.MessageEmbed
	Warning(title, description string) *discordgo.MessageEmbed
}

// ExpeditionEmbedBuilder renders expedition data into displayable pages
type ExpeditionEmbedBuilder interface {
	EmbedBuilder
	ExpeditionPages(message string, expeditions []shared.Expedition) []*discordgo.MessageEmbed
}

// ErrorEmbedBuilder renders command failures for the interaction reply
type ErrorEmbedBuilder interface {
	EmbedBuilder
	CommandError(command string, err error) *discordgo.MessageEmbed
}

// EmbedFactory creates embed builders for the command layer
type EmbedFactory interface {
	CreateExpeditionEmbedBuilder() ExpeditionEmbedBuilder
	CreateErrorEmbedBuilder() ErrorEmbedBuilder
}
