// Package station implements the Station Store on PostgreSQL.
// Every upsert runs in its own transaction so a reader never sees a station
// without its tag and language rows.
package station

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/radiocatalog/internal/adapter/postgres"
	"github.com/heartmarshall/radiocatalog/internal/adapter/stationsql"
	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	postgres.Querier
	postgres.Beginner
}

// Repo provides station persistence backed by PostgreSQL.
type Repo struct {
	db      DB
	txm     *postgres.TxManager
	canon   *canon.Canonicalizer
	dialect stationsql.Dialect
	now     func() time.Time
}

// New creates a new station repository.
func New(db DB, c *canon.Canonicalizer) *Repo {
	return &Repo{
		db:      db,
		txm:     postgres.NewTxManager(db),
		canon:   c,
		dialect: stationsql.Postgres,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpsertStation stores the station and replaces its tag and language rows.
// Malformed records are rejected before any statement runs.
func (r *Repo) UpsertStation(ctx context.Context, s domain.Station) error {
	if err := s.Validate(); err != nil {
		return err
	}

	stmts, err := r.dialect.UpsertPlan(s, domain.SplitList(s.Tags), r.canon.Languages(s.Language), r.now())
	if err != nil {
		return err
	}

	if err := r.execInTx(ctx, stmts); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, postgres.MapError(err, "station", s.ID))
	}
	return nil
}

// SaveSummary replaces the key/value summary record.
func (r *Repo) SaveSummary(ctx context.Context, s domain.Summary) error {
	stmts, err := r.dialect.SummaryPlan(s)
	if err != nil {
		return err
	}
	if err := r.execInTx(ctx, stmts); err != nil {
		return fmt.Errorf("%w: save summary: %w", domain.ErrStoreWrite, err)
	}
	return nil
}

// DeleteStations removes the given stations and their association rows in
// one transaction.
func (r *Repo) DeleteStations(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	stmts, err := r.dialect.DeleteStations(ids)
	if err != nil {
		return err
	}
	if err := r.execInTx(ctx, stmts); err != nil {
		return fmt.Errorf("%w: delete %d stations: %w", domain.ErrStoreWrite, len(ids), err)
	}
	return nil
}

func (r *Repo) execInTx(ctx context.Context, stmts []stationsql.Statement) error {
	return r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)
		for _, st := range stmts {
			if _, err := q.Exec(ctx, st.SQL, st.Args...); err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListStationsWithLanguages returns one pair per station and canonical
// language in retrieval order.
func (r *Repo) ListStationsWithLanguages(ctx context.Context) ([]domain.StationLanguage, error) {
	query, args, err := r.dialect.ListStationsWithLanguages()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []stationsql.StationLanguageRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stations with languages: %w", err)
	}

	out := make([]domain.StationLanguage, len(rows))
	for i, row := range rows {
		out[i] = row.ToDomain()
	}
	return out, nil
}

// SummaryCounts returns the total station count and the per-dimension
// groupings.
func (r *Repo) SummaryCounts(ctx context.Context) (domain.SummaryCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := r.dialect.CountStations()
	if err != nil {
		return domain.SummaryCounts{}, fmt.Errorf("build count query: %w", err)
	}

	var counts domain.SummaryCounts
	if err := q.QueryRow(ctx, query, args...).Scan(&counts.TotalStations); err != nil {
		return domain.SummaryCounts{}, fmt.Errorf("count stations: %w", err)
	}

	for _, g := range []struct {
		grouping stationsql.Grouping
		dst      *[]domain.CountEntry
	}{
		{stationsql.ByLanguage, &counts.Languages},
		{stationsql.ByCountry, &counts.Countries},
		{stationsql.ByTag, &counts.Tags},
		{stationsql.ByCodec, &counts.Codecs},
	} {
		query, args, err := r.dialect.CountBy(g.grouping)
		if err != nil {
			return domain.SummaryCounts{}, err
		}
		var rows []stationsql.CountRow
		if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
			return domain.SummaryCounts{}, fmt.Errorf("count by %s: %w", g.grouping, err)
		}
		*g.dst = stationsql.ToCountEntries(rows)
	}

	return counts, nil
}

// LoadSummary reads the persisted summary record.
// Returns domain.ErrNotFound if no summary was saved yet.
func (r *Repo) LoadSummary(ctx context.Context) (domain.Summary, error) {
	query, args, err := r.dialect.SelectSummary()
	if err != nil {
		return domain.Summary{}, fmt.Errorf("build summary query: %w", err)
	}

	var rows []stationsql.SummaryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return domain.Summary{}, fmt.Errorf("load summary: %w", err)
	}
	return stationsql.ParseSummary(rows)
}

// ListStationIDs returns every stored station ID.
func (r *Repo) ListStationIDs(ctx context.Context) ([]string, error) {
	query, args, err := r.dialect.SelectStationIDs()
	if err != nil {
		return nil, fmt.Errorf("build id query: %w", err)
	}

	var ids []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list station ids: %w", err)
	}
	return ids, nil
}
