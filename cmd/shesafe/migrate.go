package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/shesafe/internal/pkg/config"
	"github.com/piresc/shesafe/internal/pkg/database"
	"github.com/piresc/shesafe/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// migrations are applied in order; every statement is idempotent
var migrations = []struct {
	name  string
	query string
}{
	{
		name: "create owners",
		query: `
			CREATE TABLE IF NOT EXISTS owners (
				id         TEXT PRIMARY KEY,
				name       TEXT NOT NULL,
				phone      TEXT NOT NULL UNIQUE,
				pin_hash   TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		name: "create kv_store",
		query: `
			CREATE TABLE IF NOT EXISTS kv_store (
				namespace  TEXT NOT NULL,
				key        TEXT NOT NULL,
				value      JSONB NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				PRIMARY KEY (namespace, key)
			)
		`,
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the PostgreSQL tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		configs, err := config.InitConfig(configPath)
		if err != nil {
			return err
		}

		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		defer postgresClient.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		return runMigrations(ctx, postgresClient.GetDB())
	},
}

// runMigrations applies every migration in one transaction
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, m := range migrations {
		if _, err := tx.ExecContext(ctx, m.query); err != nil {
			return fmt.Errorf("migration %q failed: %w", m.name, err)
		}
		logger.Info("Migration applied", logger.String("migration", m.name))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}
	return nil
}
