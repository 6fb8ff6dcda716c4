package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/platform/metrics"
	"github.com/phrazzld/jobboard-api/internal/platform/postgres"
	"github.com/phrazzld/jobboard-api/internal/service"
	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"github.com/phrazzld/jobboard-api/internal/store"
	"github.com/phrazzld/jobboard-api/internal/store/memory"
)

// metricsRegistry is where collectors are registered and gathered from.
type metricsRegistry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// application holds the wired dependencies of a running server.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB // nil for the memory backend
	store    store.Store
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	filter   *auth.Filter
	accounts *service.AccountService
	jobs     *service.JobService
	resumes  *service.ResumeService
}

// newApplication opens the configured store and builds every service on top
// of it. The caller must call cleanup.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger, registry metricsRegistry) (*application, error) {
	m := metrics.New()
	if err := m.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	base, db, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	s := metrics.InstrumentStore(base, m)

	tokens, err := auth.NewTokenService(cfg.Auth, log)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	return &application{
		config:   cfg,
		logger:   log,
		db:       db,
		store:    s,
		metrics:  m,
		gatherer: registry,
		filter:   auth.NewFilter(tokens, log),
		accounts: service.NewAccountService(s, hasher, tokens, log),
		jobs:     service.NewJobService(s, log),
		resumes:  service.NewResumeService(s, log),
	}, nil
}

// openStore returns the configured backend. For postgres it also applies
// pending migrations.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (store.Store, *sql.DB, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		log.Info("using in-memory store")
		return memory.New(log), nil, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := postgres.Migrate(ctx, db, postgres.MigrateUp, log); err != nil {
			closeDB(db, log)
			return nil, nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("using postgres store")
		return postgres.New(db, log, cfg.Store.QueryTimeout()), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDB(app.db, app.logger)
	app.db = nil
}

func closeDB(db *sql.DB, log *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Error("failed to close database", slog.String("error", err.Error()))
	}
}
