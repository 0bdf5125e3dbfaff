package postgres

// MaxLeaderboardLimit caps leaderboard queries
const MaxLeaderboardLimit = 100

// Log messages
const (
	LogMsgOutcomeSaved = "Session outcome saved"
)
