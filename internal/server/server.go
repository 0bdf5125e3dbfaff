package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/WhineTime/internal/eventlog"
	"github.com/osse101/WhineTime/internal/handler"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/metrics"
	"github.com/osse101/WhineTime/internal/session"
	"github.com/osse101/WhineTime/internal/sse"
)

// Server is the HTTP front of the session host
type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. hub and events may be nil, which disables the
// live stream and the persisted timeline respectively.
func NewServer(port int, apiKey string, trustedProxies []string, db handler.Pinger, sessions session.Service, hub *sse.Hub, events eventlog.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, db, sessions, hub, events),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(apiKey string, trustedProxies []string, db handler.Pinger, sessions session.Service, hub *sse.Hub, events eventlog.Service) http.Handler {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	// outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db, sessions.ActiveCount))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	h := handler.NewSessionHandlers(sessions)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/actions", h.HandleListActions())
		r.Get("/leaderboard", h.HandleLeaderboard())
		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.HandleCreate())
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.HandleGet())
				r.Delete("/", h.HandleEnd())
				r.Post("/advance", h.HandleAdvance())
				r.Post("/actions", h.HandleAct())
				r.Get("/outcome", h.HandleOutcome())
				if events != nil {
					r.Get("/events", handler.HandleSessionEvents(events))
				}
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

var quietPaths = []string{"/healthz", "/readyz", "/metrics"}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start serves until Stop is called. http.ErrServerClosed is not an error.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
