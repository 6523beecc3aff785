package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// Result summarizes one export run.
type Result struct {
	Languages int
	Stations  int
	Dropped   int
	// Written lists the artifact names stored, in write order. On failure it
	// holds the artifacts written before the error; they are left in place.
	Written  []string
	Duration time.Duration
}

// Exporter reads the store once and writes every artifact to a sink.
type Exporter struct {
	store     StationReader
	sink      Sink
	threshold int
	log       *slog.Logger
}

// NewExporter creates an Exporter keeping languages with more than
// threshold stations.
func NewExporter(store StationReader, sink Sink, threshold int, log *slog.Logger) *Exporter {
	return &Exporter{
		store:     store,
		sink:      sink,
		threshold: threshold,
		log:       log.With("component", "exporter"),
	}
}

// Run builds and writes the per-language artifacts followed by index.json.
// A write failure stops the run and wraps domain.ErrExportIO.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	pairs, err := e.store.ListStationsWithLanguages(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read stations: %w", err)
	}

	arts := BuildArtifacts(pairs, e.threshold)
	res := Result{
		Languages: arts.Index.TotalLanguages,
		Stations:  arts.Index.TotalStations,
		Dropped:   arts.Dropped,
	}

	e.log.InfoContext(ctx, "artifacts built",
		slog.Int("pairs", len(pairs)),
		slog.Int("languages", res.Languages),
		slog.Int("dropped", res.Dropped),
		slog.Int("threshold", e.threshold),
	)

	for i, file := range arts.Files {
		name := arts.Index.Languages[i].Filename
		if err := e.write(ctx, name, file); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}
		res.Written = append(res.Written, name)
		e.log.DebugContext(ctx, "language exported",
			slog.String("language", file.Language),
			slog.Int("count", file.Count),
			slog.String("file", name),
		)
	}

	if err := e.write(ctx, IndexFile, arts.Index); err != nil {
		res.Duration = time.Since(start)
		return res, err
	}
	res.Written = append(res.Written, IndexFile)
	res.Duration = time.Since(start)

	e.log.InfoContext(ctx, "export completed",
		slog.Int("languages", res.Languages),
		slog.Int("stations", res.Stations),
		slog.Int("files", len(res.Written)),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

func (e *Exporter) write(ctx context.Context, name string, v any) error {
	data, err := Encode(v)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", domain.ErrExportIO, name, err)
	}
	if err := e.sink.Put(ctx, name, data); err != nil {
		e.log.ErrorContext(ctx, "artifact write failed", slog.String("file", name), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s: %w", domain.ErrExportIO, name, err)
	}
	return nil
}
