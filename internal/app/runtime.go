package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kaizen-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kaizen-backend/internal/config"
)

// Runtime owns the process-wide resources: the logger, the tracer provider,
// the connection pool and the service graph built on top of it.
type Runtime struct {
	Config   *config.Config
	Logger   *slog.Logger
	Pool     *pgxpool.Pool
	Services *Services

	shutdownTelemetry func(context.Context) error
}

// Open connects to the database and builds the service graph. Migrations are
// applied when database.auto_migrate is set. The caller must Close the
// returned Runtime.
func Open(ctx context.Context, cfg *config.Config, logOut io.Writer) (*Runtime, error) {
	logger := NewLogger(cfg.Log, logOut)

	shutdownTelemetry, err := SetupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("setup telemetry: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		_ = shutdownTelemetry(ctx)
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			_ = shutdownTelemetry(ctx)
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &Runtime{
		Config:            cfg,
		Logger:            logger,
		Pool:              pool,
		Services:          NewServices(logger, pool, cfg),
		shutdownTelemetry: shutdownTelemetry,
	}, nil
}

// Close flushes pending spans and closes the pool.
func (rt *Runtime) Close(ctx context.Context) {
	if err := rt.shutdownTelemetry(ctx); err != nil {
		rt.Logger.Error("telemetry shutdown", slog.String("error", err.Error()))
	}
	rt.Pool.Close()
}
