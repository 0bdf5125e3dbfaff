package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/WhineTime/internal/config"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
	waitPingTimeout   = 5 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for i := range waitMaxRetries {
		err = ping(cfg.GetDBConnString())
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitMaxRetries, err)
		time.Sleep(waitRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitMaxRetries, err)
}

func ping(connString string) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitPingTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return err
	}
	defer pool.Close()
	return pool.Ping(ctx)
}
