package langstats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// Source is the upstream surface the report needs.
// Implemented by radiobrowser.Client.
type Source interface {
	FetchStats(ctx context.Context) (domain.UpstreamStats, error)
	FetchLanguages(ctx context.Context) ([]domain.UpstreamLanguage, error)
}

// Sink receives the aggregate file.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}

// Result is what one report run produced.
type Result struct {
	Stats     domain.UpstreamStats
	Languages []Language
	Report    Report
}

// Runner fetches the upstream listing once, aggregates it and stores the
// aggregate as JSON.
type Runner struct {
	source Source
	sink   Sink
	file   string
	canon  *canon.Canonicalizer
	index  canon.ReverseIndex
	log    *slog.Logger
}

// NewRunner creates a Runner writing the aggregate under file.
func NewRunner(source Source, sink Sink, file string, c *canon.Canonicalizer, log *slog.Logger) *Runner {
	return &Runner{
		source: source,
		sink:   sink,
		file:   file,
		canon:  c,
		index:  canon.NewReverseIndex(c),
		log:    log.With("component", "langstats"),
	}
}

// Run fetches stats then languages, aggregates them and writes the result.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var res Result

	stats, err := r.source.FetchStats(ctx)
	if err != nil {
		return Result{}, err
	}
	res.Stats = stats

	langs, err := r.source.FetchLanguages(ctx)
	if err != nil {
		return Result{}, err
	}

	r.log.InfoContext(ctx, "upstream statistics",
		slog.Int("stations", res.Stats.Stations),
		slog.Int("stations_broken", res.Stats.StationsBroken),
		slog.Int("languages", res.Stats.Languages),
		slog.Int("countries", res.Stats.Countries),
		slog.Int("clicks_last_day", res.Stats.ClicksLastDay),
	)

	res.Languages = Aggregate(r.canon, r.index, langs)
	res.Report = Summarize(res.Languages)

	data, err := json.MarshalIndent(res.Languages, "", "  ")
	if err != nil {
		return res, fmt.Errorf("%w: encode %s: %w", domain.ErrExportIO, r.file, err)
	}
	if err := r.sink.Put(ctx, r.file, data); err != nil {
		return res, fmt.Errorf("%w: %s: %w", domain.ErrExportIO, r.file, err)
	}

	res.Report.Log(ctx, r.log)
	r.log.InfoContext(ctx, "language aggregate written",
		slog.String("file", r.file),
		slog.Int("raw_labels", len(langs)),
		slog.Int("languages", len(res.Languages)),
		slog.Int("table_spellings", r.canon.Len()),
	)
	return res, nil
}
