package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedStation inserts a bare station row (no tag or language rows) and
// returns it. Fields not set in s get generated values.
func SeedStation(t *testing.T, pool *pgxpool.Pool, s domain.Station) domain.Station {
	t.Helper()

	suffix := uniqueSuffix()
	if s.ID == "" {
		s.ID = "station-" + suffix
	}
	if s.Name == "" {
		s.Name = "Station " + suffix
	}
	if s.URL == "" {
		s.URL = "http://stream.example.com/" + suffix
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.CreatedAt, s.UpdatedAt = now, now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO stations (id, name, url, language, tags, votes, retrieval_seq, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.URL, s.Language, s.Tags, s.Votes, s.RetrievalSeq, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStation: %v", err)
	}

	return s
}
