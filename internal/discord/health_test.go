package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	tests := []struct {
		name       string
		dataReady  bool
		apiUp      bool
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", dataReady: true, apiUp: true, wantStatus: http.StatusOK, wantBody: "healthy"},
		{name: "gateway down", dataReady: false, apiUp: true, wantStatus: http.StatusServiceUnavailable, wantBody: "degraded"},
		{name: "api down", dataReady: true, apiUp: false, wantStatus: http.StatusServiceUnavailable, wantBody: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			tc := SetupTestContext(t)
			tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
				if !tt.apiUp {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				WriteJSON(w, map[string]string{"status": "ok"})
			})
			tc.Session.DataReady = tt.dataReady
			srv := NewHTTPServer("0", &Bot{Session: tc.Session, Client: tc.APIClient})
			RecordCommand()

			// ACT
			rec := httptest.NewRecorder()
			srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			// ASSERT
			assert.Equal(t, tt.wantStatus, rec.Code)
			var body HealthStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Status)
			assert.Equal(t, tt.dataReady, body.Connected)
			assert.Equal(t, tt.apiUp, body.APIReachable)
			assert.Positive(t, body.CommandsReceived)
		})
	}
}

func TestHandleHealth_NoSession(t *testing.T) {
	srv := NewHTTPServer("0", &Bot{Session: (*discordgo.Session)(nil)})
	rec := httptest.NewRecorder()

	srv.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
