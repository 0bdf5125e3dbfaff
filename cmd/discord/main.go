package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/WhineTime/internal/discord"
	"github.com/osse101/WhineTime/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	logger.InitLogger(logger.NewConfig(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), "", os.Getenv("ENVIRONMENT")))

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}
	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	if cfg.NotificationChannelID != "" {
		sseClient := discord.NewSSEClient(cfg.APIURL, cfg.APIKey, discord.NotificationEventTypes())
		discord.NewSSENotifier(bot.Session, cfg.NotificationChannelID).RegisterHandlers(sseClient)
		sseClient.Start(ctx)
		defer sseClient.Stop()
	}

	registerCommands(bot, getCommandFactories(bot))

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// commands registered by an earlier run still work
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the bot configuration from the environment
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	notificationChannelID := os.Getenv("DISCORD_NOTIFICATION_CHANNEL_ID")
	if notificationChannelID != "" {
		slog.Info("SSE notifications enabled", "channel_id", notificationChannelID)
	}

	return discord.Config{
		Token:                 token,
		AppID:                 appID,
		APIURL:                apiURL,
		APIKey:                apiKey,
		NotificationChannelID: notificationChannelID,
	}, nil
}

// getCommandFactories lists every slash command the bot serves
func getCommandFactories(bot *discord.Bot) []CommandFactory {
	withPlayers := func(f func(*discord.PlayerSessions) (*discordgo.ApplicationCommand, discord.CommandHandler)) CommandFactory {
		return func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return f(bot.Players)
		}
	}

	return []CommandFactory{
		discord.PingCommand,
		discord.LeaderboardCommand,

		// Game commands
		withPlayers(discord.NewGameCommand),
		withPlayers(discord.StatusCommand),
		withPlayers(discord.CareCommand),
		withPlayers(discord.ShopCommand),
		withPlayers(discord.LoanCommand),
		withPlayers(discord.WorkCommand),
		withPlayers(discord.EndGameCommand),
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		bot.Registry.Register(factory())
	}
}
