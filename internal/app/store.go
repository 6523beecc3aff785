package app

import (
	"context"
	"fmt"
	"log/slog"

	postgres "github.com/heartmarshall/radiocatalog/internal/adapter/postgres"
	"github.com/heartmarshall/radiocatalog/internal/adapter/postgres/station"
	"github.com/heartmarshall/radiocatalog/internal/adapter/sqlite"
	"github.com/heartmarshall/radiocatalog/internal/app/export"
	"github.com/heartmarshall/radiocatalog/internal/app/ingest"
	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/config"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// Store is the full Station Store surface used by the commands.
type Store interface {
	ingest.StationStore
	export.StationReader
	LoadSummary(ctx context.Context) (domain.Summary, error)
}

// Compile-time interface assertions.
var (
	_ Store = (*station.Repo)(nil)
	_ Store = (*sqlite.StationRepo)(nil)
)

// OpenedStore is a connected Station Store with its lifecycle hooks.
type OpenedStore struct {
	Store Store
	// Lock takes the single-run ingestion lock. The returned func releases it.
	Lock  func(ctx context.Context) (func(), error)
	Close func()
}

// OpenStore connects to the configured driver and applies migrations when
// auto_migrate is set.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, c *canon.Canonicalizer, log *slog.Logger) (*OpenedStore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, c, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, c, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, c *canon.Canonicalizer, log *slog.Logger) (*OpenedStore, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.With("adapter", "postgres")); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &OpenedStore{
		Store: station.New(pool, c),
		Lock: func(ctx context.Context) (func(), error) {
			return postgres.AcquireRunLock(ctx, pool)
		},
		Close: pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig, c *canon.Canonicalizer, log *slog.Logger) (*OpenedStore, error) {
	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := sqlite.Migrate(ctx, db, log.With("adapter", "sqlite")); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &OpenedStore{
		Store: sqlite.NewStationRepo(db, c),
		Lock: func(context.Context) (func(), error) {
			return sqlite.AcquireRunLock(cfg.SQLitePath)
		},
		Close: func() { _ = db.Close() },
	}, nil
}
