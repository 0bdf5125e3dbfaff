package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer serves the bot's health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		bot: bot,
	}

	mux.HandleFunc("GET /health", srv.HandleHealth)
	return srv
}

// Start serves in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthServerStarting, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthServerFailed, "error", err)
		}
	}()
}

// Stop shuts the server down
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), healthShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Discord health server shutdown failed", "error", err)
	}
}
