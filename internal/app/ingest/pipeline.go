// Package ingest pages through the upstream station directory and upserts
// every record into the station store.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/radiocatalog/internal/config"
	"github.com/heartmarshall/radiocatalog/internal/domain"
	"github.com/heartmarshall/radiocatalog/pkg/ctxutil"
)

// StopReason tells why the page loop ended.
type StopReason string

const (
	StopExhausted StopReason = "exhausted"
	StopMaxPages  StopReason = "max_pages"
	StopEmptyPage StopReason = "empty_page"
)

// topLanguages is how many languages the completion log lists.
const topLanguages = 5

// RunResult holds the outcome of one ingestion run.
type RunResult struct {
	RunID      uuid.UUID
	Total      int
	Pages      int
	Fetched    int
	Stored     int
	Skipped    int
	Failed     int
	Deleted    int
	StopReason StopReason
	Summary    domain.SummaryCounts
	Duration   time.Duration

	// SweepSkipped is set when a stale sweep was configured but refused.
	SweepSkipped string
}

// Complete reports whether the loop reached the upstream total without a
// defensive stop.
func (r RunResult) Complete() bool { return r.StopReason == StopExhausted }

// Pipeline runs FETCH_PAGE -> PROCESS_RECORDS until the offset reaches the
// upstream total.
type Pipeline struct {
	log    *slog.Logger
	source Source
	store  StationStore
	cfg    config.IngestConfig
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, source Source, store StationStore, cfg config.IngestConfig) *Pipeline {
	return &Pipeline{
		log:    log.With("component", "ingest"),
		source: source,
		store:  store,
		cfg:    cfg,
		now:    time.Now,
		newID:  uuid.New,
	}
}

// Run performs one ingestion. Fetch failures abort the run; record failures
// are logged and counted. The summary is persisted only when paging ends
// without a fetch error.
func (p *Pipeline) Run(ctx context.Context) (RunResult, error) {
	start := p.now()
	res := RunResult{RunID: p.newID()}
	ctx = ctxutil.WithRunID(ctx, res.RunID)
	log := p.log.With("run_id", res.RunID.String())

	seen, err := p.fetchAll(ctxutil.WithPhase(ctx, "fetch"), log, &res)
	if err != nil {
		res.Duration = p.now().Sub(start)
		log.ErrorContext(ctx, "ingestion aborted",
			slog.Int("pages", res.Pages),
			slog.String("error", err.Error()),
		)
		return res, err
	}

	if res.Complete() && p.cfg.SweepStale {
		if reason := sweepRefusal(&res, seen); reason != "" {
			res.SweepSkipped = reason
			log.WarnContext(ctx, "stale sweep skipped",
				slog.String("reason", reason),
				slog.Int("fetched", res.Fetched),
				slog.Int("seen", len(seen)),
				slog.Int("total", res.Total),
			)
		} else {
			deleted, err := p.sweep(ctxutil.WithPhase(ctx, "sweep"), log, seen)
			res.Deleted = deleted
			if err != nil {
				res.Duration = p.now().Sub(start)
				return res, fmt.Errorf("sweep stale stations: %w", err)
			}
		}
	} else if !res.Complete() {
		log.WarnContext(ctx, "ingestion incomplete",
			slog.String("stop_reason", string(res.StopReason)),
			slog.Int("pages", res.Pages),
			slog.Int("fetched", res.Fetched),
			slog.Int("total", res.Total),
		)
	}

	counts, err := p.summarize(ctxutil.WithPhase(ctx, "summary"))
	if err != nil {
		res.Duration = p.now().Sub(start)
		return res, err
	}
	res.Summary = counts
	res.Duration = p.now().Sub(start)

	log.InfoContext(ctx, "ingestion completed",
		slog.Int("pages", res.Pages),
		slog.Int("fetched", res.Fetched),
		slog.Int("stored", res.Stored),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
		slog.Int("deleted", res.Deleted),
		slog.Int("total_stations", counts.TotalStations),
		slog.String("stop_reason", string(res.StopReason)),
		slog.Duration("duration", res.Duration),
	)
	for i, l := range counts.Languages {
		if i == topLanguages {
			break
		}
		log.InfoContext(ctx, "top language", slog.Int("rank", i+1), slog.String("language", l.Label), slog.Int("stations", l.Count))
	}

	return res, nil
}

// fetchAll pages strictly sequentially and returns the set of station IDs
// returned upstream during this run.
func (p *Pipeline) fetchAll(ctx context.Context, log *slog.Logger, res *RunResult) (map[string]struct{}, error) {
	total, err := p.source.FetchTotalCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch total count: %w", err)
	}
	if total < 0 {
		return nil, fmt.Errorf("%w: negative total count %d", domain.ErrUpstreamFetch, total)
	}
	res.Total = total
	log.InfoContext(ctx, "starting ingestion", slog.Int("total", total), slog.Int("page_size", p.cfg.PageSize))

	// The reported total is not trusted for sizing.
	seen := make(map[string]struct{})
	limit := p.cfg.PageSize
	offset := 0
	res.StopReason = StopExhausted

	for offset < total {
		if err := ctx.Err(); err != nil {
			return seen, err
		}
		if res.Pages >= p.cfg.MaxPages {
			res.StopReason = StopMaxPages
			break
		}

		page, err := p.source.FetchPage(ctx, offset, limit)
		if err != nil {
			return seen, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		res.Pages++
		res.Fetched += len(page)

		if len(page) == 0 && p.cfg.StopOnEmptyPage {
			res.StopReason = StopEmptyPage
			break
		}

		stored := p.processPage(ctx, log, offset, page, seen, res)

		log.InfoContext(ctx, "page processed",
			slog.Int("offset", offset),
			slog.Int("limit", limit),
			slog.Int("received", len(page)),
			slog.Int("stored", stored),
			slog.Int("processed", min(offset+len(page), total)),
			slog.Int("total", total),
		)
		offset += limit
	}

	return seen, nil
}

func (p *Pipeline) processPage(ctx context.Context, log *slog.Logger, offset int, page []domain.Station, seen map[string]struct{}, res *RunResult) int {
	stored := 0
	for i, s := range page {
		s.RetrievalSeq = int64(offset + i)
		if s.ID != "" {
			seen[s.ID] = struct{}{}
		}

		err := p.store.UpsertStation(ctx, s)
		if err == nil {
			stored++
			continue
		}

		recErr := &domain.RecordError{StationID: s.ID, Offset: offset, Err: err}
		if errors.Is(err, domain.ErrMalformedRecord) {
			res.Skipped++
			log.WarnContext(ctx, "record skipped",
				slog.String("station_id", s.ID),
				slog.Int("offset", offset),
				slog.String("error", recErr.Error()),
			)
			continue
		}
		res.Failed++
		log.ErrorContext(ctx, "record failed",
			slog.String("station_id", s.ID),
			slog.Int("offset", offset),
			slog.String("error", recErr.Error()),
		)
	}
	res.Stored += stored
	return stored
}

// sweepRefusal returns why the stale sweep must not run, or "" when it may.
// An upstream total of zero or an undercounted page sequence would otherwise
// delete stations that still exist.
func sweepRefusal(res *RunResult, seen map[string]struct{}) string {
	switch {
	case res.Total <= 0:
		return "upstream reported no stations"
	case len(seen) == 0:
		return "no station ids returned"
	case res.Fetched < res.Total:
		return "fetched fewer records than the upstream total"
	}
	return ""
}

func (p *Pipeline) sweep(ctx context.Context, log *slog.Logger, seen map[string]struct{}) (int, error) {
	ids, err := p.store.ListStationIDs(ctx)
	if err != nil {
		return 0, err
	}

	var stale []string
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}
	if err := p.store.DeleteStations(ctx, stale); err != nil {
		return 0, err
	}

	log.InfoContext(ctx, "stale stations deleted", slog.Int("deleted", len(stale)))
	return len(stale), nil
}

func (p *Pipeline) summarize(ctx context.Context) (domain.SummaryCounts, error) {
	counts, err := p.store.SummaryCounts(ctx)
	if err != nil {
		return domain.SummaryCounts{}, fmt.Errorf("summary counts: %w", err)
	}
	err = p.store.SaveSummary(ctx, domain.Summary{
		LastUpdated:   p.now(),
		TotalStations: counts.TotalStations,
	})
	if err != nil {
		return counts, fmt.Errorf("save summary: %w", err)
	}
	return counts, nil
}
