// Package app wires configuration, logging, the Station Store and the
// upstream client into the three command entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/radiocatalog/internal/adapter/provider/radiobrowser"
	"github.com/heartmarshall/radiocatalog/internal/app/export"
	"github.com/heartmarshall/radiocatalog/internal/app/ingest"
	"github.com/heartmarshall/radiocatalog/internal/app/langstats"
	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/config"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// RunIngest takes the run lock, pages through the upstream directory into
// the configured store and persists the summary.
func RunIngest(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ingest.RunResult, error) {
	logger.Info("starting ingestion",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	c := canon.New()
	st, err := OpenStore(ctx, cfg.Database, c, logger)
	if err != nil {
		return ingest.RunResult{}, err
	}
	defer st.Close()

	release, err := st.Lock(ctx)
	if err != nil {
		return ingest.RunResult{}, fmt.Errorf("acquire run lock: %w", err)
	}
	defer release()

	client := radiobrowser.New(cfg.Upstream, logger)
	return ingest.NewPipeline(logger, client, st.Store, cfg.Ingest).Run(ctx)
}

// RunExport reads the store and writes the per-language artifacts and the
// index to the configured sink. threshold overrides export.threshold when
// non-negative.
func RunExport(ctx context.Context, cfg *config.Config, threshold int, logger *slog.Logger) (export.Result, error) {
	if threshold < 0 {
		threshold = cfg.Export.Threshold
	}
	logger.Info("starting export",
		slog.String("version", BuildVersion()),
		slog.String("driver", cfg.Database.Driver),
		slog.String("sink", cfg.Export.Sink),
		slog.Int("threshold", threshold),
	)

	sink, err := NewSink(cfg.Export)
	if err != nil {
		return export.Result{}, err
	}

	st, err := OpenStore(ctx, cfg.Database, canon.New(), logger)
	if err != nil {
		return export.Result{}, err
	}
	defer st.Close()

	logSummary(ctx, st.Store, logger)

	return export.NewExporter(st.Store, sink, threshold, logger).Run(ctx)
}

// RunLangStats aggregates the upstream language listing and writes it to
// the configured sink. It does not touch the store.
func RunLangStats(ctx context.Context, cfg *config.Config, logger *slog.Logger) (langstats.Result, error) {
	logger.Info("starting language statistics",
		slog.String("version", BuildVersion()),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	sink, err := NewSink(cfg.Export)
	if err != nil {
		return langstats.Result{}, err
	}

	client := radiobrowser.New(cfg.Upstream, logger)
	return langstats.NewRunner(client, sink, cfg.Export.LangStatsFile, canon.New(), logger).Run(ctx)
}

// logSummary reports when the store was last ingested. A missing summary is
// only a warning: the export still runs on whatever rows exist.
func logSummary(ctx context.Context, st Store, logger *slog.Logger) {
	sum, err := st.LoadSummary(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.WarnContext(ctx, "no ingestion summary found; store may be empty")
	case err != nil:
		logger.WarnContext(ctx, "load ingestion summary", slog.String("error", err.Error()))
	default:
		logger.InfoContext(ctx, "exporting ingested snapshot",
			slog.Time("last_updated", sum.LastUpdated),
			slog.Int("total_stations", sum.TotalStations),
		)
	}
}
