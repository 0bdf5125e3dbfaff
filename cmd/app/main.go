package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/WhineTime/internal/bootstrap"
	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/database"
	"github.com/osse101/WhineTime/internal/eventlog"
	"github.com/osse101/WhineTime/internal/handler"
	"github.com/osse101/WhineTime/internal/logger"
	"github.com/osse101/WhineTime/internal/server"
	"github.com/osse101/WhineTime/internal/session"
	"github.com/osse101/WhineTime/internal/sse"
)

const shutdownTimeout = 15 * time.Second

// @title Whine Time API
// @version 1.0
// @description Baby-care life simulation: sessions, care actions and live game events.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	balances, err := bootstrap.LoadBalances(cfg)
	if err != nil {
		fatal("Invalid balance configuration", err)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		fatal("Failed to connect to database", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		fatal("Failed to migrate database", err)
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		fatal("Failed to initialize event system", err)
	}

	repos := bootstrap.InitializeRepositories(pool)
	events := eventlog.NewService(repos.EventLog)
	sessions := session.NewService(repos.Outcomes, publisher, session.Options{
		CacheSize: cfg.SessionCacheSize,
		TTL:       cfg.SessionTTL,
		Balances:  balances,
	})

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: events,
		SessionService:  sessions,
		Hub:             hub,
	}); err != nil {
		fatal("Failed to register event handlers", err)
	}

	jobs := bootstrap.StartBackgroundJobs(cfg, sessions, events)

	if handler.Version == "dev" {
		handler.Version = cfg.Version
	}
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, sessions, hub, events)

	go func() {
		logger.Info("Server listening", "port", cfg.Port)
		if err := srv.Start(); err != nil {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Jobs:               jobs,
		SessionService:     sessions,
		Hub:                hub,
		ResilientPublisher: publisher,
	})
}

func fatal(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
