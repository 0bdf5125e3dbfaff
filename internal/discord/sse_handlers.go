package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/progression"
)

// SSENotifier posts notable game events to a Discord channel
type SSENotifier struct {
	session            *discordgo.Session
	notificationChanID string
}

// NewSSENotifier creates a new SSE notifier
func NewSSENotifier(session *discordgo.Session, notificationChanID string) *SSENotifier {
	return &SSENotifier{
		session:            session,
		notificationChanID: notificationChanID,
	}
}

// RegisterHandlers registers all SSE event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypeSessionFinished, n.handleSessionFinished)
	client.OnEvent(SSEEventTypeLevelUp, n.handleLevelUp)
	client.OnEvent(SSEEventTypeAchievementUnlocked, n.handleAchievement)
}

func (n *SSENotifier) handleSessionFinished(event SSEEvent) error {
	var o domain.Outcome
	if !decodePayload(event, &o) {
		return nil
	}

	name := o.PlayerName
	if name == "" {
		name = "A parent"
	}

	embed := &discordgo.MessageEmbed{
		Description: formatOutcome(&o),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterWhineTime},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	switch o.Result {
	case domain.OutcomeWon:
		embed.Title = fmt.Sprintf("🎉 %s raised a happy family!", name)
		embed.Color = ColorGold
	case domain.OutcomeLost:
		embed.Title = fmt.Sprintf("💔 %s's household fell apart", name)
		embed.Color = ColorDanger
	default:
		embed.Title = fmt.Sprintf("👋 %s left the game", name)
		embed.Color = ColorTeal
	}
	return n.send(event, embed)
}

func (n *SSENotifier) handleLevelUp(event SSEEvent) error {
	var up progression.LevelUp
	if !decodePayload(event, &up) {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⭐ Level %d reached!", up.NewLevel),
		Description: fmt.Sprintf("A household grew from level %d to **level %d**.", up.OldLevel, up.NewLevel),
		Color:       ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reward", Value: formatMoney(up.Reward), Inline: true},
			{Name: "Day", Value: fmt.Sprintf("%d", int(event.GameHours/24)+1), Inline: true},
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: FooterWhineTime},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return n.send(event, embed)
}

func (n *SSENotifier) handleAchievement(event SSEEvent) error {
	var u progression.Unlock
	if !decodePayload(event, &u) {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏅 Achievement: %s", humanize(string(u.Achievement))),
		Description: fmt.Sprintf("Unlocked for a reward of **%s**.", formatMoney(u.Reward)),
		Color:       ColorGold,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterWhineTime},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	return n.send(event, embed)
}

// decodePayload logs and drops malformed events rather than failing the stream
func decodePayload(event SSEEvent, v interface{}) bool {
	if err := json.Unmarshal(event.Payload, v); err != nil {
		slog.Warn(sseLogMsgParseError, "error", err, "event_type", event.Type)
		return false
	}
	return true
}

func (n *SSENotifier) send(event SSEEvent, embed *discordgo.MessageEmbed) error {
	if n.notificationChanID == "" {
		return nil
	}
	if _, err := n.session.ChannelMessageSendEmbed(n.notificationChanID, embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", event.Type, "error", err)
		return err
	}
	slog.Info(sseLogMsgNotificationSent, "event_type", event.Type, "session_id", event.SessionID)
	return nil
}
