// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/hirelane/internal/platform/migration"
)

// migrateConfig is the subset of configuration the schema commands need, so
// they run without session secrets or Redis.
type migrateConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	Debug         bool   `env:"DEBUG"          envDefault:"false"`
}

func newMigrateCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	command.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return withMigrateConfig(func(cfg migrateConfig, log *slog.Logger) error {
					return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back the given number of migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					parsed, err := strconv.Atoi(args[0])
					if err != nil || parsed < 1 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = parsed
				}
				return withMigrateConfig(func(cfg migrateConfig, log *slog.Logger) error {
					return migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, steps, log)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrateConfig(func(cfg migrateConfig, log *slog.Logger) error {
					status, err := migration.CurrentStatus(cfg.DatabaseURL, cfg.MigrationPath, log)
					if err != nil {
						return err
					}
					if !status.Applied {
						cmd.Println("no migrations applied")
						return nil
					}
					cmd.Printf("version %d (dirty: %t)\n", status.Version, status.Dirty)
					return nil
				})
			},
		},
	)

	return command
}

func withMigrateConfig(run func(cfg migrateConfig, log *slog.Logger) error) error {
	var cfg migrateConfig
	if err := env.Parse(&cfg); err != nil {
		return fail(newLogger(false), err, "load configuration")
	}

	log := newLogger(cfg.Debug)
	if err := run(cfg, log); err != nil {
		return fail(log, err, "migrate")
	}
	return nil
}
