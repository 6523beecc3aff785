// Package export groups stored stations by canonical language and writes
// one JSON artifact per sufficiently populated language plus an index.
package export

import (
	"context"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// StationReader is the store surface the exporter consumes.
// Implemented by station.Repo (PostgreSQL) and sqlite.StationRepo.
type StationReader interface {
	ListStationsWithLanguages(ctx context.Context) ([]domain.StationLanguage, error)
}

// Sink receives finished artifacts by file name.
// Implemented by artifact.DirSink and artifact.S3Sink.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}
