package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/WhineTime/internal/logger"
)

// decodeAndValidateRequest decodes the JSON body into dst and runs the tag
// validators. It writes the error response itself and returns false on
// failure.
func decodeAndValidateRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Warn(LogMsgDecodeFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := GetValidator().ValidateStruct(dst); err != nil {
		log.Warn(LogMsgValidationFailed, "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:  ErrMsgValidationFailed,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// sessionIDParam reads the {id} route parameter
func sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, URLParamID)
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingSessionID)
		return "", false
	}
	return id, true
}

// parseLimit reads ?limit=, returning def when absent. Non-positive or
// malformed values are rejected.
func parseLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get(QueryParamLimit)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return n, true
}
