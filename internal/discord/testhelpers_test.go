package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper intercepts the Discord REST calls made by a session
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake game API and a Discord session whose REST calls
// are captured instead of sent
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session
	Players   *PlayerSessions

	mu       sync.Mutex
	edits    []discordgo.WebhookEdit
	requests []*http.Request
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.retryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
		Players:   NewPlayerSessions(10, time.Hour),
	}
	session.Client = &http.Client{Transport: &MockRoundTripper{RoundTripFunc: tc.capture}}
	return tc
}

func (tc *TestContext) capture(req *http.Request) (*http.Response, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	tc.requests = append(tc.requests, req)
	if req.Method == http.MethodPatch && req.Body != nil {
		var edit discordgo.WebhookEdit
		if err := json.NewDecoder(req.Body).Decode(&edit); err == nil {
			tc.edits = append(tc.edits, edit)
		}
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString("{}")),
		Header:     make(http.Header),
	}, nil
}

// LastEdit returns the final edit of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	require.NotEmpty(t, tc.edits, "expected an interaction response edit")
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the first embed of the final edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Embeds)
	require.NotEmpty(t, *edit.Embeds)
	return (*edit.Embeds)[0]
}

// LastContent returns the text of the final edit
func (tc *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := tc.LastEdit(t)
	require.NotNil(t, edit.Content)
	return *edit.Content
}

// Requests returns the captured Discord REST calls
func (tc *TestContext) Requests() []*http.Request {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]*http.Request(nil), tc.requests...)
}

// newInteraction builds a slash command interaction from user u1
func newInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "u1", Username: "Tester"},
			},
		},
	}
}

func stringOpt(name, v string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: v}
}

// Discord sends integers as JSON numbers
func intOpt(name string, v int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(v)}
}

func numberOpt(name string, v float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionNumber, Value: v}
}

// WriteJSON writes a JSON success response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

func writeAPIError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
