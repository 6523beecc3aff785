package ingest

import (
	"context"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// Source is the upstream directory the pipeline pages through.
// Implemented by radiobrowser.Client.
type Source interface {
	FetchTotalCount(ctx context.Context) (int, error)
	FetchPage(ctx context.Context, offset, limit int) ([]domain.Station, error)
}

// StationStore is the persistence surface the pipeline writes to.
// Implemented by station.Repo (PostgreSQL) and sqlite.StationRepo.
type StationStore interface {
	UpsertStation(ctx context.Context, s domain.Station) error
	SummaryCounts(ctx context.Context) (domain.SummaryCounts, error)
	SaveSummary(ctx context.Context, s domain.Summary) error
	ListStationIDs(ctx context.Context) ([]string, error)
	DeleteStations(ctx context.Context, ids []string) error
}
