package stationsql

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// UpsertStation inserts the station row or replaces its scalar columns.
// The update only fires when at least one scalar column differs, so an
// unchanged record keeps its updated_at. created_at is never overwritten.
func (d Dialect) UpsertStation(s domain.Station, now time.Time) (string, []any, error) {
	cols := append([]string{"id"}, scalarColumns...)
	cols = append(cols, "created_at", "updated_at")

	values := []any{
		s.ID,
		s.Name, s.URL, s.Favicon, s.Tags, s.Country, s.State, s.Language,
		s.Votes, s.Codec, s.Bitrate, s.Homepage,
		s.Telemetry.LastCheckOK, s.Telemetry.LastCheckTime, s.Telemetry.ClickTimestamp,
		s.Telemetry.ClickCount, s.Telemetry.ClickTrend, s.Telemetry.SSLError,
		s.Telemetry.GeoLat, s.Telemetry.GeoLong, s.Telemetry.HasExtendedInfo,
		s.RetrievalSeq,
		now, now,
	}

	return d.builder().
		Insert(tableStations).
		Columns(cols...).
		Values(values...).
		Suffix(d.upsertSuffix()).
		ToSql()
}

func (d Dialect) upsertSuffix() string {
	set := make([]string, 0, len(scalarColumns)+1)
	changed := make([]string, 0, len(scalarColumns))
	for _, c := range scalarColumns {
		set = append(set, fmt.Sprintf("%s = excluded.%s", c, c))
		changed = append(changed, fmt.Sprintf("%s.%s %s excluded.%s", tableStations, c, d.distinct, c))
	}
	set = append(set, "updated_at = excluded.updated_at")

	return "ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ") +
		" WHERE " + strings.Join(changed, " OR ")
}

// DeleteTags removes every tag row of a station.
func (d Dialect) DeleteTags(stationID string) (string, []any, error) {
	return d.builder().Delete(tableTags).Where(sq.Eq{"station_id": stationID}).ToSql()
}

// InsertTags inserts tag rows keeping their order in position.
// tags must be non-empty and free of duplicates.
func (d Dialect) InsertTags(stationID string, tags []string) (string, []any, error) {
	return d.insertAssoc(tableTags, "tag", stationID, tags)
}

// DeleteLanguages removes every language row of a station.
func (d Dialect) DeleteLanguages(stationID string) (string, []any, error) {
	return d.builder().Delete(tableLanguages).Where(sq.Eq{"station_id": stationID}).ToSql()
}

// InsertLanguages inserts canonical language rows keeping their order in
// position. languages must be non-empty and free of duplicates.
func (d Dialect) InsertLanguages(stationID string, languages []string) (string, []any, error) {
	return d.insertAssoc(tableLanguages, "language", stationID, languages)
}

func (d Dialect) insertAssoc(table, col, stationID string, values []string) (string, []any, error) {
	if len(values) == 0 {
		return "", nil, fmt.Errorf("insert %s: no values for station %q", table, stationID)
	}
	b := d.builder().Insert(table).Columns("station_id", col, "position")
	for i, v := range values {
		b = b.Values(stationID, v, i)
	}
	return b.ToSql()
}

// ListStationsWithLanguages selects one row per station and canonical
// language. Stations without language rows appear once with their raw
// language column. Rows come in retrieval order.
func (d Dialect) ListStationsWithLanguages() (string, []any, error) {
	return d.builder().
		Select(
			"s.id", "s.name", "s.url", "s.favicon", "s.tags", "s.country", "s.state",
			"s.language", "s.votes", "s.codec", "s.bitrate", "s.homepage", "s.retrieval_seq",
			"COALESCE(sl.language, s.language) AS canonical_language",
		).
		From(tableStations + " s").
		LeftJoin(tableLanguages + " sl ON sl.station_id = s.id").
		OrderBy("s.retrieval_seq", "s.id", "sl.position").
		ToSql()
}

// CountStations counts every stored station.
func (d Dialect) CountStations() (string, []any, error) {
	return d.builder().Select("COUNT(*)").From(tableStations).ToSql()
}

// Grouping is a dimension of SummaryCounts.
type Grouping int

const (
	ByLanguage Grouping = iota
	ByCountry
	ByTag
	ByCodec
)

// String returns the grouping name used in logs.
func (g Grouping) String() string {
	switch g {
	case ByLanguage:
		return "language"
	case ByCountry:
		return "country"
	case ByTag:
		return "tag"
	case ByCodec:
		return "codec"
	default:
		return fmt.Sprintf("grouping(%d)", int(g))
	}
}

// CountBy groups stations by one dimension, ordered by count desc then
// label. Empty country and codec values are not counted.
func (d Dialect) CountBy(g Grouping) (string, []any, error) {
	var table, col string
	switch g {
	case ByLanguage:
		table, col = tableLanguages, "language"
	case ByTag:
		table, col = tableTags, "tag"
	case ByCountry:
		table, col = tableStations, "country"
	case ByCodec:
		table, col = tableStations, "codec"
	default:
		return "", nil, fmt.Errorf("count by %s: unknown grouping", g)
	}

	b := d.builder().
		Select(col+" AS label", "COUNT(*) AS n").
		From(table).
		GroupBy(col).
		OrderBy("n DESC", "label ASC")
	if table == tableStations {
		b = b.Where(sq.NotEq{col: ""})
	}
	return b.ToSql()
}

// DeleteSummary clears the key/value summary table.
func (d Dialect) DeleteSummary() (string, []any, error) {
	return d.builder().Delete(tableSummary).ToSql()
}

// InsertSummary writes the summary record.
func (d Dialect) InsertSummary(s domain.Summary) (string, []any, error) {
	return d.builder().
		Insert(tableSummary).
		Columns("key", "value").
		Values(SummaryLastUpdated, s.LastUpdated.UTC().Format(time.RFC3339)).
		Values(SummaryTotalStations, fmt.Sprintf("%d", s.TotalStations)).
		ToSql()
}

// SelectSummary reads every summary key/value pair.
func (d Dialect) SelectSummary() (string, []any, error) {
	return d.builder().Select("key", "value").From(tableSummary).OrderBy("key").ToSql()
}

// SelectStationIDs lists every stored station ID.
func (d Dialect) SelectStationIDs() (string, []any, error) {
	return d.builder().Select("id").From(tableStations).OrderBy("id").ToSql()
}

// DeleteStations returns the statements removing the given stations and
// their association rows, children first, at most DeleteChunk IDs each.
func (d Dialect) DeleteStations(ids []string) ([]Statement, error) {
	var out []Statement
	for start := 0; start < len(ids); start += DeleteChunk {
		end := min(start+DeleteChunk, len(ids))
		chunk := ids[start:end]

		for _, del := range []struct{ table, col string }{
			{tableTags, "station_id"},
			{tableLanguages, "station_id"},
			{tableStations, "id"},
		} {
			query, args, err := d.builder().Delete(del.table).Where(sq.Eq{del.col: chunk}).ToSql()
			if err != nil {
				return nil, fmt.Errorf("build delete %s: %w", del.table, err)
			}
			out = append(out, Statement{SQL: query, Args: args})
		}
	}
	return out, nil
}

// Statement is a built query with its arguments.
type Statement struct {
	SQL  string
	Args []any
}
