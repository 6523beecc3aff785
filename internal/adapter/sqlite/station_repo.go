package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/radiocatalog/internal/adapter/stationsql"
	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// StationRepo provides station persistence backed by SQLite.
type StationRepo struct {
	db      *sql.DB
	canon   *canon.Canonicalizer
	dialect stationsql.Dialect
	now     func() time.Time
}

// NewStationRepo creates a new SQLite station repository.
func NewStationRepo(db *sql.DB, c *canon.Canonicalizer) *StationRepo {
	return &StationRepo{
		db:      db,
		canon:   c,
		dialect: stationsql.SQLite,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// UpsertStation stores the station and replaces its tag and language rows
// in one transaction. Malformed records are rejected before any statement runs.
func (r *StationRepo) UpsertStation(ctx context.Context, s domain.Station) error {
	if err := s.Validate(); err != nil {
		return err
	}

	stmts, err := r.dialect.UpsertPlan(s, domain.SplitList(s.Tags), r.canon.Languages(s.Language), r.now())
	if err != nil {
		return err
	}

	if err := r.execInTx(ctx, stmts); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, mapError(err, "station", s.ID))
	}
	return nil
}

// SaveSummary replaces the key/value summary record.
func (r *StationRepo) SaveSummary(ctx context.Context, s domain.Summary) error {
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
func (r *StationRepo) DeleteStations(ctx context.Context, ids []string) error {
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

func (r *StationRepo) execInTx(ctx context.Context, stmts []stationsql.Statement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	for _, st := range stmts {
		if _, err := tx.ExecContext(ctx, st.SQL, st.Args...); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
			}
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ListStationsWithLanguages returns one pair per station and canonical
// language in retrieval order.
func (r *StationRepo) ListStationsWithLanguages(ctx context.Context) ([]domain.StationLanguage, error) {
	query, args, err := r.dialect.ListStationsWithLanguages()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []stationsql.StationLanguageRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
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
func (r *StationRepo) SummaryCounts(ctx context.Context) (domain.SummaryCounts, error) {
	query, args, err := r.dialect.CountStations()
	if err != nil {
		return domain.SummaryCounts{}, fmt.Errorf("build count query: %w", err)
	}

	var counts domain.SummaryCounts
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&counts.TotalStations); err != nil {
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
		if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
			return domain.SummaryCounts{}, fmt.Errorf("count by %s: %w", g.grouping, err)
		}
		*g.dst = stationsql.ToCountEntries(rows)
	}

	return counts, nil
}

// LoadSummary reads the persisted summary record.
// Returns domain.ErrNotFound if no summary was saved yet.
func (r *StationRepo) LoadSummary(ctx context.Context) (domain.Summary, error) {
	query, args, err := r.dialect.SelectSummary()
	if err != nil {
		return domain.Summary{}, fmt.Errorf("build summary query: %w", err)
	}

	var rows []stationsql.SummaryRow
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return domain.Summary{}, fmt.Errorf("load summary: %w", err)
	}
	return stationsql.ParseSummary(rows)
}

// ListStationIDs returns every stored station ID.
func (r *StationRepo) ListStationIDs(ctx context.Context) ([]string, error) {
	query, args, err := r.dialect.SelectStationIDs()
	if err != nil {
		return nil, fmt.Errorf("build id query: %w", err)
	}

	var ids []string
	if err := sqlscan.Select(ctx, r.db, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list station ids: %w", err)
	}
	return ids, nil
}
