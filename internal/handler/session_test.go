package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/game"
	"github.com/osse101/WhineTime/internal/session"
)

func newTestRouter(svc session.Service) http.Handler {
	h := NewSessionHandlers(svc)
	r := chi.NewRouter()
	r.Get("/actions", h.HandleListActions())
	r.Get("/leaderboard", h.HandleLeaderboard())
	r.Post("/sessions", h.HandleCreate())
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGet())
		r.Delete("/", h.HandleEnd())
		r.Post("/advance", h.HandleAdvance())
		r.Post("/actions", h.HandleAct())
		r.Get("/outcome", h.HandleOutcome())
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleCreate(t *testing.T) {
	seed := int64(7)

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockSessionService)
		wantStatus int
		wantField  string
	}{
		{
			name: "created with defaults",
			body: `{}`,
			setupMock: func(m *MockSessionService) {
				m.On("Create", mock.Anything, session.CreateRequest{}).
					Return(&session.Summary{SessionID: "s1", Profile: "normal"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "all fields forwarded",
			body: `{"player_name":"Sam","gender":"male","profile":"hard","seed":7}`,
			setupMock: func(m *MockSessionService) {
				m.On("Create", mock.Anything, session.CreateRequest{
					PlayerName: "Sam", Gender: domain.GenderMale, Profile: "hard", Seed: &seed,
				}).Return(&session.Summary{SessionID: "s2", Profile: "hard"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown profile",
			body:       `{"profile":"nightmare"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "profile",
		},
		{
			name:       "bad gender",
			body:       `{"gender":"robot"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "gender",
		},
		{
			name:       "markup in name",
			body:       `{"player_name":"<b>"}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "player_name",
		},
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			svc := new(MockSessionService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			// ACT
			rec := do(t, newTestRouter(svc), http.MethodPost, "/sessions", tt.body)

			// ASSERT
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantField != "" {
				assert.Contains(t, decodeError(t, rec).Fields, tt.wantField)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleAdvance(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockSessionService)
		wantStatus int
		wantError  string
	}{
		{
			name: "half an hour",
			body: `{"hours":0.5}`,
			setupMock: func(m *MockSessionService) {
				m.On("Advance", mock.Anything, "s1", 30*time.Minute).Return(&game.Snapshot{Hours: 0.5}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "zero hours",
			body:       `{"hours":0}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgValidationFailed,
		},
		{
			name:       "more than a day",
			body:       `{"hours":25}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgValidationFailed,
		},
		{
			name: "finished session",
			body: `{"hours":1}`,
			setupMock: func(m *MockSessionService) {
				m.On("Advance", mock.Anything, "s1", time.Hour).Return(nil, domain.ErrSessionFinished)
			},
			wantStatus: http.StatusConflict,
			wantError:  ErrMsgSessionFinished,
		},
		{
			name: "unknown session",
			body: `{"hours":1}`,
			setupMock: func(m *MockSessionService) {
				m.On("Advance", mock.Anything, "s1", time.Hour).
					Return(nil, fmt.Errorf("advance: %w", domain.ErrSessionNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantError:  ErrMsgSessionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			svc := new(MockSessionService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			// ACT
			rec := do(t, newTestRouter(svc), http.MethodPost, "/sessions/s1/advance", tt.body)

			// ASSERT
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleAct(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockSessionService)
		wantStatus int
		wantError  string
	}{
		{
			name: "feed",
			body: `{"action":"feed","target_id":"b1","formula":"formula"}`,
			setupMock: func(m *MockSessionService) {
				m.On("Act", mock.Anything, "s1", mock.MatchedBy(func(a session.Action) bool {
					return a.Name == session.ActionFeed && a.TargetID == "b1"
				})).Return(&session.ActionResult{Action: session.ActionFeed}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown action name",
			body:       `{"action":"juggle"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgValidationFailed,
		},
		{
			name:       "negative quantity",
			body:       `{"action":"buy_item","item":"diapers","quantity":-1}`,
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgValidationFailed,
		},
		{
			name: "rejected keeps the game reason",
			body: `{"action":"take_loan","amount":99999}`,
			setupMock: func(m *MockSessionService) {
				m.On("Act", mock.Anything, "s1", mock.Anything).
					Return(nil, fmt.Errorf("%w: take_loan: over the limit", domain.ErrActionRejected))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "action rejected: take_loan: over the limit",
		},
		{
			name: "missing actor",
			body: `{"action":"sleep","actor_id":"nobody"}`,
			setupMock: func(m *MockSessionService) {
				m.On("Act", mock.Anything, "s1", mock.Anything).Return(nil, domain.ErrActorNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  ErrMsgActorNotFound,
		},
		{
			name: "internal failure hides detail",
			body: `{"action":"wash_bottles"}`,
			setupMock: func(m *MockSessionService) {
				m.On("Act", mock.Anything, "s1", mock.Anything).Return(nil, errors.New("pq: connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  ErrMsgServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ARRANGE
			svc := new(MockSessionService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			// ACT
			rec := do(t, newTestRouter(svc), http.MethodPost, "/sessions/s1/actions", tt.body)

			// ASSERT
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetEndOutcome(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("Get", mock.Anything, "s1").Return(&game.Snapshot{Day: 3}, nil)
	svc.On("End", mock.Anything, "s1").Return(&domain.Outcome{SessionID: "s1", Result: domain.OutcomeAbandoned}, nil)
	svc.On("Outcome", mock.Anything, "gone").Return(nil, domain.ErrSessionNotFound)
	router := newTestRouter(svc)

	t.Run("get", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/sessions/s1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var snap game.Snapshot
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
		assert.Equal(t, 3, snap.Day)
	})

	t.Run("end", func(t *testing.T) {
		rec := do(t, router, http.MethodDelete, "/sessions/s1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var out domain.Outcome
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, domain.OutcomeAbandoned, out.Result)
	})

	t.Run("outcome of unknown session", func(t *testing.T) {
		rec := do(t, router, http.MethodGet, "/sessions/gone/outcome", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	svc.AssertExpectations(t)
}

func TestHandleLeaderboard(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantStatus int
	}{
		{"default limit", "", DefaultLeaderboardLimit, http.StatusOK},
		{"explicit limit", "?limit=3", 3, http.StatusOK},
		{"zero limit", "?limit=0", 0, http.StatusBadRequest},
		{"not a number", "?limit=ten", 0, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockSessionService)
			if tt.wantLimit > 0 {
				svc.On("Leaderboard", mock.Anything, tt.wantLimit).
					Return([]domain.LeaderboardEntry{{Rank: 1}}, nil)
			}

			rec := do(t, newTestRouter(svc), http.MethodGet, "/leaderboard"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleListActions(t *testing.T) {
	rec := do(t, newTestRouter(new(MockSessionService)), http.MethodGet, "/actions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, session.ActionNames(), resp.Data)
}
