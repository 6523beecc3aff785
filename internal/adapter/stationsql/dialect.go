// Package stationsql builds the station store statements shared by the
// PostgreSQL and SQLite adapters. Statements differ only in placeholder
// format and in the null-safe inequality operator.
package stationsql

import (
	sq "github.com/Masterminds/squirrel"
)

// Dialect captures the per-database differences of the station schema.
type Dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	// distinct is the null-safe "values differ" operator.
	distinct string
}

var (
	// Postgres uses $N placeholders and IS DISTINCT FROM.
	Postgres = Dialect{name: "postgres", placeholder: sq.Dollar, distinct: "IS DISTINCT FROM"}
	// SQLite uses ? placeholders and IS NOT.
	SQLite = Dialect{name: "sqlite", placeholder: sq.Question, distinct: "IS NOT"}
)

// Name returns the dialect name.
func (d Dialect) Name() string { return d.name }

func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// Table and column names.
const (
	tableStations  = "stations"
	tableTags      = "station_tags"
	tableLanguages = "station_languages"
	tableSummary   = "summary"
)

// scalarColumns are the station columns replaced on every upsert, in
// insert order. created_at and updated_at are handled separately.
var scalarColumns = []string{
	"name", "url", "favicon", "tags", "country", "state", "language",
	"votes", "codec", "bitrate", "homepage",
	"lastcheckok", "lastchecktime", "clicktimestamp", "clickcount", "clicktrend",
	"ssl_error", "geo_lat", "geo_long", "has_extended_info",
	"retrieval_seq",
}

// Summary keys.
const (
	SummaryLastUpdated   = "last_updated"
	SummaryTotalStations = "total_stations"
)

// DeleteChunk is the maximum number of station IDs per DELETE statement.
const DeleteChunk = 500
