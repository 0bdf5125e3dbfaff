package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/WhineTime/internal/config"
	"github.com/osse101/WhineTime/internal/database"
)

const migrateTimeout = 2 * time.Minute

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: %s, %s, %s", database.MigrateUp, database.MigrateDown, database.MigrateStatus)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer pool.Close()

	PrintHeader(fmt.Sprintf("Migrate %s", args[0]))
	statuses, err := database.RunMigrateCommand(ctx, pool, args[0])
	if err != nil {
		return err
	}

	for _, s := range statuses {
		if s.Applied {
			PrintSuccess("%05d %s", s.Version, s.Path)
		} else {
			PrintWarning("%05d %s (pending)", s.Version, s.Path)
		}
	}
	return nil
}
