package station

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)

	repo := New(mock, canon.New())
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func expectationsMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_UpsertStation(t *testing.T) {
	valid := domain.Station{
		ID: "a", Name: "Radio A", URL: "http://a",
		Tags: " pop , news,pop,", Language: "english, English UK, klingon", Votes: 10,
	}

	tests := []struct {
		name    string
		station domain.Station
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name:    "rows replaced in one transaction",
			station: valid,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO stations`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(`DELETE FROM station_tags`).WithArgs("a").
					WillReturnResult(pgxmock.NewResult("DELETE", 3))
				mock.ExpectExec(`INSERT INTO station_tags`).WithArgs("a", "pop", 0, "a", "news", 1).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
				mock.ExpectExec(`DELETE FROM station_languages`).WithArgs("a").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectExec(`INSERT INTO station_languages`).WithArgs("a", "English", 0, "a", "Klingon", 1).
					WillReturnResult(pgxmock.NewResult("INSERT", 2))
				mock.ExpectCommit()
			},
		},
		{
			name:    "no tags or languages clears associations",
			station: domain.Station{ID: "b", Name: "B", URL: "http://b"},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO stations`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(`DELETE FROM station_tags`).WithArgs("b").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`DELETE FROM station_languages`).WithArgs("b").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectCommit()
			},
		},
		{
			name:    "failure rolls the station back",
			station: valid,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO stations`).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectExec(`DELETE FROM station_tags`).WillReturnResult(pgxmock.NewResult("DELETE", 0))
				mock.ExpectExec(`INSERT INTO station_tags`).WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			wantErr: domain.ErrStoreWrite,
		},
		{
			name:    "missing url never reaches the database",
			station: domain.Station{ID: "c", Name: "C"},
			setup:   func(pgxmock.PgxPoolIface) {},
			wantErr: domain.ErrMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t)
			tt.setup(mock)

			err := repo.UpsertStation(context.Background(), tt.station)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("UpsertStation() unexpected error: %v", err)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("UpsertStation() error = %v, want %v", err, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.station.ID) {
					t.Errorf("error %q should name station %q", err, tt.station.ID)
				}
			}

			expectationsMet(t, mock)
		})
	}
}

func TestRepo_ListStationsWithLanguages(t *testing.T) {
	repo, mock := newTestRepo(t)

	cols := []string{
		"id", "name", "url", "favicon", "tags", "country", "state", "language",
		"votes", "codec", "bitrate", "homepage", "retrieval_seq", "canonical_language",
	}
	mock.ExpectQuery(`LEFT JOIN station_languages`).WillReturnRows(
		pgxmock.NewRows(cols).
			AddRow("a", "A", "http://a", "", "pop", "UK", "", "english uk", 10, "MP3", 128, "", int64(0), "English").
			AddRow("b", "B", "http://b", "", "", "", "", "", 5, "AAC", 64, "", int64(1), ""),
	)

	got, err := repo.ListStationsWithLanguages(context.Background())
	if err != nil {
		t.Fatalf("ListStationsWithLanguages: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Language != "English" || got[0].Station.Language != "english uk" || got[0].Station.Votes != 10 {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Station.ID != "b" || got[1].Station.RetrievalSeq != 1 {
		t.Errorf("got[1] = %+v", got[1])
	}

	expectationsMet(t, mock)
}

func TestRepo_SummaryCounts(t *testing.T) {
	repo, mock := newTestRepo(t)

	labelRows := func(pairs ...any) *pgxmock.Rows {
		rows := pgxmock.NewRows([]string{"label", "n"})
		for i := 0; i < len(pairs); i += 2 {
			rows.AddRow(pairs[i], pairs[i+1])
		}
		return rows
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM stations`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`FROM station_languages GROUP BY language`).
		WillReturnRows(labelRows("English", 2, "Chinese", 1))
	mock.ExpectQuery(`FROM stations WHERE country`).
		WillReturnRows(labelRows("UK", 3))
	mock.ExpectQuery(`FROM station_tags GROUP BY tag`).
		WillReturnRows(labelRows())
	mock.ExpectQuery(`FROM stations WHERE codec`).
		WillReturnRows(labelRows("MP3", 2, "AAC", 1))

	got, err := repo.SummaryCounts(context.Background())
	if err != nil {
		t.Fatalf("SummaryCounts: %v", err)
	}
	if got.TotalStations != 3 {
		t.Errorf("TotalStations = %d, want 3", got.TotalStations)
	}
	if len(got.Languages) != 2 || got.Languages[0] != (domain.CountEntry{Label: "English", Count: 2}) {
		t.Errorf("Languages = %+v", got.Languages)
	}
	if len(got.Tags) != 0 {
		t.Errorf("Tags = %+v, want empty", got.Tags)
	}
	if len(got.Codecs) != 2 || got.Codecs[1].Label != "AAC" {
		t.Errorf("Codecs = %+v", got.Codecs)
	}

	expectationsMet(t, mock)
}

func TestRepo_SaveSummary(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM summary`).WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(`INSERT INTO summary`).
		WithArgs("last_updated", "2024-05-01T12:00:00Z", "total_stations", "3").
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	mock.ExpectCommit()

	err := repo.SaveSummary(context.Background(), domain.Summary{LastUpdated: fixedNow, TotalStations: 3})
	if err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}

	expectationsMet(t, mock)
}

func TestRepo_LoadSummary_Empty(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`FROM summary`).WillReturnRows(pgxmock.NewRows([]string{"key", "value"}))

	_, err := repo.LoadSummary(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("LoadSummary() error = %v, want ErrNotFound", err)
	}

	expectationsMet(t, mock)
}

func TestRepo_DeleteStations(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM station_tags WHERE station_id IN`).WithArgs("x", "y").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM station_languages WHERE station_id IN`).WithArgs("x", "y").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM stations WHERE id IN`).WithArgs("x", "y").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectCommit()

	if err := repo.DeleteStations(context.Background(), []string{"x", "y"}); err != nil {
		t.Fatalf("DeleteStations: %v", err)
	}
	if err := repo.DeleteStations(context.Background(), nil); err != nil {
		t.Fatalf("DeleteStations(nil): %v", err)
	}

	expectationsMet(t, mock)
}

func TestRepo_ListStationIDs(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT id FROM stations`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("a").AddRow("b"))

	ids, err := repo.ListStationIDs(context.Background())
	if err != nil {
		t.Fatalf("ListStationIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ids = %v", ids)
	}

	expectationsMet(t, mock)
}
