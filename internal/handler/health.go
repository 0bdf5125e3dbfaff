package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/WhineTime/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Sessions *int   `json:"sessions,omitempty"`
}

// Pinger is anything that can prove a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once the outcome store answers a ping. The live
// session count is included so operators can see load at a glance.
// @Summary Readiness check
// @Description Returns OK if the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(db Pinger, activeSessions func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: ErrMsgDatabaseUnavailable,
			})
			return
		}

		resp := HealthResponse{Status: HealthStatusOK}
		if activeSessions != nil {
			n := activeSessions()
			resp.Sessions = &n
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
