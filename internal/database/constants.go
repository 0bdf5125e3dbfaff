package database

// DefaultMinConnections is the minimum number of connections kept open
const DefaultMinConnections = 2

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgUnknownMigrateCommand   = "unknown migrate command"
)

// Log messages
const (
	LogMsgConnected        = "Successfully connected to the database"
	LogMsgMigrationApplied = "Migration applied"
	LogMsgSchemaUpToDate   = "Database schema up to date"
)

// Migrate commands
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)
