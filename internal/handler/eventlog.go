package handler

import (
	"net/http"

	"github.com/osse101/WhineTime/internal/eventlog"
)

// QueryParamType filters a timeline to one event type
const QueryParamType = "type"

// TimelineResponse wraps a session's logged events
type TimelineResponse struct {
	SessionID string           `json:"session_id"`
	Events    []eventlog.Entry `json:"events"`
}

// HandleSessionEvents returns the persisted event timeline of a session
// @Summary Session event timeline
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param type query string false "Event type"
// @Param limit query int false "Max events"
// @Success 200 {object} TimelineResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/events [get]
func HandleSessionEvents(events eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sessionIDParam(w, r)
		if !ok {
			return
		}
		limit, ok := parseLimit(w, r, eventlog.DefaultTimelineLimit)
		if !ok {
			return
		}

		entries, err := events.Timeline(r.Context(), id, eventlog.Filter{
			EventType: r.URL.Query().Get(QueryParamType),
			Limit:     limit,
		})
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, TimelineResponse{SessionID: id, Events: entries})
	}
}
