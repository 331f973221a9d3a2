// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/hirelane/internal/api"
	"github.com/taibuivan/hirelane/internal/platform/config"
	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/metrics"
	"github.com/taibuivan/hirelane/internal/platform/migration"
	"github.com/taibuivan/hirelane/internal/platform/notify"
	pgstore "github.com/taibuivan/hirelane/internal/platform/postgres"
	redisstore "github.com/taibuivan/hirelane/internal/platform/redis"
	"github.com/taibuivan/hirelane/internal/platform/sec"
	"github.com/taibuivan/hirelane/internal/recruit/candidate"
	"github.com/taibuivan/hirelane/internal/recruit/job"
	"github.com/taibuivan/hirelane/internal/users/account"
	"github.com/taibuivan/hirelane/internal/users/auth"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

// serve runs the startup sequence and blocks until a shutdown signal.
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Connect to PostgreSQL and Redis (retried with backoff).
//  3. Apply pending migrations.
//  4. Wire stores, services and handlers.
//  5. Serve until SIGINT or SIGTERM, then drain in-flight requests.
func serve(parent context.Context) error {
	log := newLogger(false)
	log.Info("service_initializing", slog.String(constants.FieldVersion, constants.AppVersion))

	// ── 1. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fail(log, err, "load configuration")
	}
	if cfg.Debug {
		log = newLogger(true)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("mail_provider", cfg.Mail.Provider),
	)

	// Bounded so misconfiguration is caught quickly rather than hanging.
	startupContext, startupCancel := context.WithTimeout(parent, constants.GlobalRequestTimeout)
	defer startupCancel()

	// ── 2. PostgreSQL and Redis ───────────────────────────────────────────
	pool, err := pgstore.NewPool(startupContext, cfg.DatabaseURL, log)
	if err != nil {
		return fail(log, err, "connect to postgres")
	}
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupContext, cfg.RedisURL, log)
	if err != nil {
		return fail(log, err, "connect to redis")
	}
	defer func() {
		log.Info("closing_redis_client")
		if closeErr := rdb.Close(); closeErr != nil {
			log.Error("redis_close_error", slog.Any("error", closeErr))
		}
	}()

	// ── 3. Migrations ─────────────────────────────────────────────────────
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return fail(log, err, "run migrations")
	}

	// ── 4. Wiring ─────────────────────────────────────────────────────────
	issuer, err := sec.NewSessionIssuer(sec.SessionConfig{
		AccessSecret:  []byte(cfg.Tokens.AccessSecret),
		RefreshSecret: []byte(cfg.Tokens.RefreshSecret),
		AccessTTL:     cfg.Tokens.AccessTTL,
		RefreshTTL:    cfg.Tokens.RefreshTTL,
		Issuer:        constants.AuthIssuer,
	})
	if err != nil {
		return fail(log, err, "initialize session issuer")
	}

	mailer, err := notify.New(cfg.Mail, log)
	if err != nil {
		return fail(log, err, "initialize mail dispatcher")
	}

	recorder := metrics.New()

	accounts := auth.NewAccountRepository(pool)
	sessionVersions := auth.NewSessionVersionStore(rdb)

	authService := auth.NewService(auth.Dependencies{
		Accounts:           accounts,
		VerificationTokens: auth.NewVerificationTokenStore(rdb, cfg.Tokens.VerificationTTL, nil),
		SessionVersions:    sessionVersions,
		Tokens:             issuer,
		Hasher:             sec.NewBcryptHasher(bcrypt.DefaultCost),
		Mailer:             mailer,
		Metrics:            recorder,
	}, auth.Options{
		PublicBaseURL: cfg.PublicBaseURL,
		ResetTTL:      cfg.Tokens.ResetTTL,
	})

	jobService := job.NewService(job.NewPostgresRepository(pool), log)
	candidateService := candidate.NewService(candidate.NewPostgresRepository(pool), jobService, nil, log)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	server := api.NewServer(cfg, log, api.Guards{Verifier: issuer, Roles: authService}, recorder, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(authService, cfg.IsProduction()),
		Account:    account.NewHandler(account.NewService(accounts, sessionVersions)),
		Jobs:       job.NewHandler(jobService),
		Candidates: candidate.NewHandler(candidateService),
	})

	// ── 5. Serve and drain ────────────────────────────────────────────────
	signalContext, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-signalContext.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		if err != nil {
			return fail(log, err, "listen")
		}
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return err
	}

	log.Info("server_stopped_cleanly")
	return nil
}
