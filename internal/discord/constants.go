package discord

import "time"

// Command names
const (
	CmdPing        = "ping"
	CmdNewGame     = "newgame"
	CmdStatus      = "status"
	CmdCare        = "care"
	CmdShop        = "shop"
	CmdLoan        = "loan"
	CmdWork        = "work"
	CmdEndGame     = "endgame"
	CmdLeaderboard = "leaderboard"
)

// Option names
const (
	OptName     = "name"
	OptProfile  = "profile"
	OptAction   = "action"
	OptBaby     = "baby"
	OptFormula  = "formula"
	OptHours    = "hours"
	OptItem     = "item"
	OptQuantity = "quantity"
	OptAmount   = "amount"
	OptLimit    = "limit"
)

// Loan option values
const (
	LoanTake  = "take"
	LoanRepay = "repay"
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorWarning = 0xf39c12
	ColorDanger  = 0xe74c3c
	ColorGold    = 0xf1c40f
	ColorTeal    = 0x1abc9c
)

// FooterWhineTime is the standard embed footer
const FooterWhineTime = "Whine Time"

// Defaults
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 25
	DefaultSleepHours       = 2
	DefaultPlayerCacheSize  = 10000
	DefaultPlayerTTL        = 24 * time.Hour
)

// API client retry settings
const (
	apiRequestTimeout = 10 * time.Second
	apiMaxRetries     = 3
	apiRetryDelay     = 500 * time.Millisecond
	apiErrorPrefix    = "API error: "
	headerAPIKey      = "X-API-Key"
)

// API paths
const (
	pathSessions    = "/api/v1/sessions"
	pathLeaderboard = "/api/v1/leaderboard"
	pathHealthz     = "/healthz"
)

// Log messages
const (
	LogMsgBotRunning           = "Discord bot is now running"
	LogMsgBotReady             = "Bot is ready"
	LogMsgCommandFailed        = "Command failed"
	LogMsgDeferFailed          = "Failed to send deferred response"
	LogMsgEditFailed           = "Failed to edit interaction response"
	LogMsgRetryingRequest      = "Retrying API request"
	LogMsgRequestFailed        = "API request failed"
	LogMsgServerErrorRetry     = "Server error, will retry"
	LogMsgCheckingCommands     = "Checking Discord commands..."
	LogMsgCommandsUnchanged    = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated      = "Commands updated successfully"
	LogMsgHealthServerStarting = "Starting Discord health server"
	LogMsgHealthServerFailed   = "Discord health server failed"
)

// commandTimeout bounds the API calls made for one interaction
const commandTimeout = 30 * time.Second

// Health server settings
const (
	healthProbeTimeout    = 3 * time.Second
	healthShutdownTimeout = 5 * time.Second
)
