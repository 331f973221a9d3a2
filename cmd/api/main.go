// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Hirelane HTTP API server.
//
// # Commands
//
//   - serve (default): boots the HTTP server with graceful shutdown.
//   - migrate up|down|status: manages the SQL schema and exits.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/hirelane/internal/platform/constants"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "hirelane",
		Short:         "Hirelane recruitment API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newMigrateCommand())
	return root
}

// newLogger builds the process logger. Every entry is tagged app=hirelane.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}

// fail logs a structured startup error and returns it to cobra.
//
// It is limited to startup wiring. After startup, errors are handled by the
// request that raised them.
func fail(log *slog.Logger, err error, step string) error {
	log.Error("startup_failure",
		slog.String("step", step),
		slog.Any("error", err),
	)
	return err
}
