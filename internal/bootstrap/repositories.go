package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WhineTime/internal/database/postgres"
	"github.com/osse101/WhineTime/internal/eventlog"
	"github.com/osse101/WhineTime/internal/repository"
	"github.com/osse101/WhineTime/internal/repository/memory"
)

// Repositories holds the persistence the session host depends on
type Repositories struct {
	Outcomes repository.Outcomes
	EventLog eventlog.Repository
}

// InitializeRepositories returns Postgres-backed repositories, or in-memory
// ones when pool is nil.
func InitializeRepositories(pool *pgxpool.Pool) *Repositories {
	if pool == nil {
		return &Repositories{
			Outcomes: memory.NewOutcomeRepository(),
			EventLog: memory.NewEventLogRepository(),
		}
	}
	return &Repositories{
		Outcomes: postgres.NewOutcomeRepository(pool),
		EventLog: postgres.NewEventLogRepository(pool),
	}
}
