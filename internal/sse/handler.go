package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/WhineTime/internal/logger"
)

// Handler streams hub events to one client. ?types= takes a comma list of
// event types and ?session= limits the stream to one session.
//
// @Summary Stream session events
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma separated event types"
// @Param session query string false "Session ID"
// @Success 200 {string} string "event stream"
// @Router /api/v1/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var types []string
		if raw := r.URL.Query().Get(QueryParamTypes); raw != "" {
			types = strings.Split(raw, ",")
		}
		sessionID := r.URL.Query().Get(QueryParamSession)

		log := logger.FromContext(r.Context())
		client := hub.Register(NewFilter(types, sessionID))
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", types, "session_id", sessionID)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		write := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			SessionID: sessionID,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": types},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !write(e) {
					return
				}
			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
