package handler

import (
	"net/http"
	"time"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/session"
)

// DefaultLeaderboardLimit applies when ?limit= is absent
const DefaultLeaderboardLimit = 10

// CreateSessionRequest starts a new game
type CreateSessionRequest struct {
	PlayerName string        `json:"player_name" validate:"max=32,excludesall=<>"`
	Gender     domain.Gender `json:"gender" validate:"omitempty,gender"`
	Profile    string        `json:"profile" validate:"omitempty,profile"`
	Seed       *int64        `json:"seed,omitempty"`
}

// AdvanceRequest moves a session forward by game hours
type AdvanceRequest struct {
	Hours float64 `json:"hours" validate:"gt=0,lte=24"`
}

// SessionHandlers serves the session API
type SessionHandlers struct {
	sessions session.Service
}

// NewSessionHandlers creates the session handlers
func NewSessionHandlers(sessions session.Service) *SessionHandlers {
	return &SessionHandlers{sessions: sessions}
}

// HandleCreate starts a new game
// @Summary Create session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "New game"
// @Success 201 {object} session.Summary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if !decodeAndValidateRequest(w, r, &req) {
			return
		}

		sum, err := h.sessions.Create(r.Context(), session.CreateRequest{
			PlayerName: req.PlayerName,
			Gender:     req.Gender,
			Profile:    req.Profile,
			Seed:       req.Seed,
		})
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSessionCreated, "session_id", sum.SessionID, "profile", sum.Profile)
		respondJSON(w, http.StatusCreated, sum)
	}
}

// HandleGet returns the current snapshot
// @Summary Get session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} game.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionIDParam(w, r)
		if !ok {
			return
		}
		snap, err := h.sessions.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleAdvance moves the session forward
// @Summary Advance session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body AdvanceRequest true "Game hours"
// @Success 200 {object} game.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/advance [post]
func (h *SessionHandlers) HandleAdvance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionIDParam(w, r)
		if !ok {
			return
		}
		var req AdvanceRequest
		if !decodeAndValidateRequest(w, r, &req) {
			return
		}

		dt := time.Duration(req.Hours * float64(time.Hour))
		snap, err := h.sessions.Advance(r.Context(), id, dt)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleAct applies one player action
// @Summary Perform action
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body session.Action true "Action"
// @Success 200 {object} session.ActionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/actions [post]
func (h *SessionHandlers) HandleAct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionIDParam(w, r)
		if !ok {
			return
		}
		var action session.Action
		if !decodeAndValidateRequest(w, r, &action) {
			return
		}

		res, err := h.sessions.Act(r.Context(), id, action)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgActionApplied, "session_id", id, "action", action.Name)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleListActions lists every action name the API accepts
// @Summary List actions
// @Tags sessions
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/actions [get]
func (h *SessionHandlers) HandleListActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: session.ActionNames()})
	}
}

// HandleEnd abandons or closes a session and returns its outcome
// @Summary End session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Outcome
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandlers) HandleEnd() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionIDParam(w, r)
		if !ok {
			return
		}
		out, err := h.sessions.End(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgSessionEnded, "session_id", id, "result", out.Result)
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleOutcome returns the recorded or provisional outcome
// @Summary Session outcome
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Outcome
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/outcome [get]
func (h *SessionHandlers) HandleOutcome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionIDParam(w, r)
		if !ok {
			return
		}
		out, err := h.sessions.Outcome(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// HandleLeaderboard returns the best recorded outcomes
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Entries to return"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/leaderboard [get]
func (h *SessionHandlers) HandleLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(w, r, DefaultLeaderboardLimit)
		if !ok {
			return
		}
		entries, err := h.sessions.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
