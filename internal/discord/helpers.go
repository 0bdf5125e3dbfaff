package discord

import (
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// deferResponse acknowledges an interaction so slow API calls don't hit
// Discord's 3 second limit. Returns false if the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

// getInteractionUser handles both guild (i.Member.User) and DM (i.User) contexts
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// optionMap indexes the command options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name, def string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return def
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	if o, ok := opts[name]; ok {
		return int(o.IntValue())
	}
	return def
}

func floatOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def float64) float64 {
	if o, ok := opts[name]; ok {
		return o.FloatValue()
	}
	return def
}

// respondError replaces the deferred response with a plain message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}

// respondFriendlyError logs the API failure and shows the player a readable message
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	slog.Warn(LogMsgCommandFailed, "command", i.ApplicationCommandData().Name, "error", err)
	respondError(s, i, formatFriendlyError(err))
}

func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterWhineTime},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error(LogMsgEditFailed, "error", err)
	}
}
