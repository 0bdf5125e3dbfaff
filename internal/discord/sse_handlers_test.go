package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notifierHarness records the embeds the notifier posts
type notifierHarness struct {
	notifier *SSENotifier
	client   *SSEClient
	paths    []string
	embeds   []*discordgo.MessageEmbed
}

func newNotifierHarness(t *testing.T, channelID string) *notifierHarness {
	t.Helper()
	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	h := &notifierHarness{client: NewSSEClient("http://unused", "", nil)}
	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
		h.paths = append(h.paths, req.URL.Path)
		var body struct {
			Embeds []*discordgo.MessageEmbed `json:"embeds"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
			h.embeds = append(h.embeds, body.Embeds...)
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString(`{"id":"m1"}`)),
			Header:     make(http.Header),
		}, nil
	}}}

	h.notifier = NewSSENotifier(session, channelID)
	h.notifier.RegisterHandlers(h.client)
	return h
}

func (h *notifierHarness) deliver(eventType, payload string) {
	h.client.dispatchEvent("", eventType, `{"session_id":"s1","game_hours":50,"payload":`+payload+`}`)
}

func TestSSENotifier(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		payload   string
		wantTitle string
		wantColor int
	}{
		{
			name:      "won game",
			eventType: SSEEventTypeSessionFinished,
			payload:   `{"player_name":"Ada","result":"won","days_survived":7}`,
			wantTitle: "🎉 Ada raised a happy family!",
			wantColor: ColorGold,
		},
		{
			name:      "lost game without a name",
			eventType: SSEEventTypeSessionFinished,
			payload:   `{"result":"lost","days_survived":2}`,
			wantTitle: "💔 A parent's household fell apart",
			wantColor: ColorDanger,
		},
		{
			name:      "abandoned game",
			eventType: SSEEventTypeSessionFinished,
			payload:   `{"player_name":"Bo","result":"abandoned"}`,
			wantTitle: "👋 Bo left the game",
			wantColor: ColorTeal,
		},
		{
			name:      "level up",
			eventType: SSEEventTypeLevelUp,
			payload:   `{"old_level":2,"new_level":3,"reward":100}`,
			wantTitle: "⭐ Level 3 reached!",
			wantColor: ColorSuccess,
		},
		{
			name:      "achievement",
			eventType: SSEEventTypeAchievementUnlocked,
			payload:   `{"achievement":"caring_master","reward":250}`,
			wantTitle: "🏅 Achievement: Caring Master",
			wantColor: ColorGold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			h := newNotifierHarness(t, "chan-1")

			// ACT
			h.deliver(tt.eventType, tt.payload)

			// ASSERT
			require.Len(t, h.embeds, 1)
			assert.Equal(t, tt.wantTitle, h.embeds[0].Title)
			assert.Equal(t, tt.wantColor, h.embeds[0].Color)
			require.Len(t, h.paths, 1)
			assert.True(t, strings.HasSuffix(h.paths[0], "/channels/chan-1/messages"))
		})
	}
}

func TestSSENotifier_LevelUpShowsDay(t *testing.T) {
	h := newNotifierHarness(t, "chan-1")

	h.deliver(SSEEventTypeLevelUp, `{"old_level":1,"new_level":2,"reward":50}`)

	require.Len(t, h.embeds, 1)
	fields := h.embeds[0].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "$50.00", fields[0].Value)
	assert.Equal(t, "3", fields[1].Value, "50 game hours is day 3")
}

func TestSSENotifier_NoChannelSendsNothing(t *testing.T) {
	h := newNotifierHarness(t, "")

	h.deliver(SSEEventTypeLevelUp, `{"old_level":1,"new_level":2}`)

	assert.Empty(t, h.paths)
}

func TestSSENotifier_MalformedPayloadIsDropped(t *testing.T) {
	h := newNotifierHarness(t, "chan-1")

	h.deliver(SSEEventTypeAchievementUnlocked, `"not an object"`)

	assert.Empty(t, h.paths)
}
