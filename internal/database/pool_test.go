package database

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/WhineTime/internal/testing/leaktest"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// testcontainers panics when Docker is missing
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func requireDB(t *testing.T, maxConns int) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}
	pool, err := NewPool(context.Background(), testDBConnString, maxConns, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestNewPool_BadConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://u:p@localhost:notaport/db", 5, time.Minute, time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestPool_ConnectionsReleased(t *testing.T) {
	pool := requireDB(t, 5)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err, "acquire on iteration %d", i)

		var result int
		require.NoError(t, conn.QueryRow(ctx, "SELECT 1").Scan(&result))
		assert.Equal(t, 1, result)
		conn.Release()
	}

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
}

func TestPool_MaxConnsEnforced(t *testing.T) {
	const maxConns = 3
	pool := requireDB(t, maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conns := make([]*pgxpool.Conn, maxConns)
	for i := range conns {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		conns[i] = conn
	}
	assert.Equal(t, int32(maxConns), pool.Stat().AcquiredConns())

	shortCtx, shortCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer shortCancel()
	_, err := pool.Acquire(shortCtx)
	assert.Error(t, err, "pool is exhausted")

	for _, c := range conns {
		c.Release()
	}
}

func TestPool_ConcurrentAccess(t *testing.T) {
	pool := requireDB(t, 10)
	checker := leaktest.NewGoroutineChecker(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			var result int
			if err := pool.QueryRow(context.Background(), "SELECT $1::int", id).Scan(&result); err != nil {
				t.Errorf("worker %d query failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(0), pool.Stat().AcquiredConns())
	checker.Check(2)
}

func TestMigrate(t *testing.T) {
	pool := requireDB(t, 5)
	ctx := context.Background()

	// ACT
	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool), "second run is a no-op")

	// ASSERT
	statuses, err := RunMigrateCommand(ctx, pool, MigrateStatus)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.True(t, s.Applied, s.Path)
	}

	var exists bool
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'session_outcomes')").Scan(&exists))
	assert.True(t, exists)
}

func TestRunMigrateCommand_Unknown(t *testing.T) {
	pool := requireDB(t, 2)

	_, err := RunMigrateCommand(context.Background(), pool, "sideways")

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownMigrateCommand)
}
