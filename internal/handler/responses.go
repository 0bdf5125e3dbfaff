package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/osse101/WhineTime/internal/domain"
	"github.com/osse101/WhineTime/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON encodes into a pooled buffer first so an encoding failure
// never leaves a half written body
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts session service errors to a status and a
// message safe to show the player
func mapServiceError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgServerError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFound
	case errors.Is(err, domain.ErrSessionFinished):
		return http.StatusConflict, ErrMsgSessionFinished
	case errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, ErrMsgUnknownAction
	case errors.Is(err, domain.ErrActorNotFound):
		return http.StatusNotFound, ErrMsgActorNotFound
	case errors.Is(err, domain.ErrActionRejected):
		return http.StatusUnprocessableEntity, rejectionMessage(err)
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidBalance):
		return http.StatusBadRequest, ErrMsgInvalidInput
	case errors.Is(err, domain.ErrOutcomeExists):
		return http.StatusConflict, ErrMsgOutcomeExists
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusServiceUnavailable, ErrMsgUnavailable
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}

// rejectionMessage keeps the game's reason, which is written for players
func rejectionMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrMsgActionRejected); i >= 0 {
		return msg[i:]
	}
	return domain.ErrMsgActionRejected
}

func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "error", err, "status", status)
	} else {
		log.Debug(LogMsgServiceError, "error", err, "status", status)
	}
	respondError(w, status, msg)
}
