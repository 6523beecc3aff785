package stationsql

import (
	"fmt"
	"strconv"
	"time"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// StationLanguageRow is one row of ListStationsWithLanguages.
type StationLanguageRow struct {
	ID                string `db:"id"`
	Name              string `db:"name"`
	URL               string `db:"url"`
	Favicon           string `db:"favicon"`
	Tags              string `db:"tags"`
	Country           string `db:"country"`
	State             string `db:"state"`
	Language          string `db:"language"`
	Votes             int    `db:"votes"`
	Codec             string `db:"codec"`
	Bitrate           int    `db:"bitrate"`
	Homepage          string `db:"homepage"`
	RetrievalSeq      int64  `db:"retrieval_seq"`
	CanonicalLanguage string `db:"canonical_language"`
}

// ToDomain converts the row into a station×language pair.
func (r StationLanguageRow) ToDomain() domain.StationLanguage {
	return domain.StationLanguage{
		Station: domain.Station{
			ID:           r.ID,
			Name:         r.Name,
			URL:          r.URL,
			Favicon:      r.Favicon,
			Tags:         r.Tags,
			Country:      r.Country,
			State:        r.State,
			Language:     r.Language,
			Votes:        r.Votes,
			Codec:        r.Codec,
			Bitrate:      r.Bitrate,
			Homepage:     r.Homepage,
			RetrievalSeq: r.RetrievalSeq,
		},
		Language: r.CanonicalLanguage,
	}
}

// CountRow is one row of CountBy.
type CountRow struct {
	Label string `db:"label"`
	N     int    `db:"n"`
}

// ToCountEntries converts count rows, keeping their order.
func ToCountEntries(rows []CountRow) []domain.CountEntry {
	out := make([]domain.CountEntry, len(rows))
	for i, r := range rows {
		out[i] = domain.CountEntry{Label: r.Label, Count: r.N}
	}
	return out
}

// SummaryRow is one key/value pair of the summary table.
type SummaryRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// ParseSummary rebuilds a Summary from its key/value rows.
// An empty row set yields domain.ErrNotFound.
func ParseSummary(rows []SummaryRow) (domain.Summary, error) {
	if len(rows) == 0 {
		return domain.Summary{}, fmt.Errorf("summary: %w", domain.ErrNotFound)
	}

	var s domain.Summary
	for _, r := range rows {
		switch r.Key {
		case SummaryLastUpdated:
			t, err := time.Parse(time.RFC3339, r.Value)
			if err != nil {
				return domain.Summary{}, fmt.Errorf("summary %s: %w", r.Key, err)
			}
			s.LastUpdated = t
		case SummaryTotalStations:
			n, err := strconv.Atoi(r.Value)
			if err != nil {
				return domain.Summary{}, fmt.Errorf("summary %s: %w", r.Key, err)
			}
			s.TotalStations = n
		}
	}
	return s, nil
}
