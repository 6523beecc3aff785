package domain

import (
	"strings"
	"time"
)

// Station is a streaming-radio station as stored in the catalog.
// Tags and Language hold the raw comma-delimited text received from the
// upstream directory; the derived associations live in separate tables.
type Station struct {
	ID       string
	Name     string
	URL      string
	Favicon  string
	Tags     string
	Country  string
	State    string
	Language string
	Votes    int
	Codec    string
	Bitrate  int
	Homepage string

	Telemetry Telemetry

	// RetrievalSeq is the station's position in the upstream snapshot
	// (page offset + index within the page). It drives export tie-breaking.
	RetrievalSeq int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Telemetry holds upstream health/click fields. They are stored verbatim and
// never interpreted or exported.
type Telemetry struct {
	LastCheckOK     int
	LastCheckTime   string
	ClickTimestamp  string
	ClickCount      int
	ClickTrend      int
	SSLError        int
	GeoLat          *float64
	GeoLong         *float64
	HasExtendedInfo bool
}

// Validate checks the fields an upsert cannot proceed without.
func (s Station) Validate() error {
	switch {
	case strings.TrimSpace(s.ID) == "":
		return &MalformedRecordError{StationID: s.ID, Field: "id", Message: "is required"}
	case strings.TrimSpace(s.Name) == "":
		return &MalformedRecordError{StationID: s.ID, Field: "name", Message: "is required"}
	case strings.TrimSpace(s.URL) == "":
		return &MalformedRecordError{StationID: s.ID, Field: "url", Message: "is required"}
	}
	return nil
}

// StationLanguage is one station x canonical-language pair as produced by the
// store's join. Language is the raw language field when the station has no
// language rows.
type StationLanguage struct {
	Station  Station
	Language string
}

// CountEntry is a single label with its occurrence count.
type CountEntry struct {
	Label string
	Count int
}

// SummaryCounts is the operational report computed after ingestion.
type SummaryCounts struct {
	TotalStations int
	Languages     []CountEntry
	Countries     []CountEntry
	Tags          []CountEntry
	Codecs        []CountEntry
}

// Summary is the small key/value record persisted for downstream visibility.
type Summary struct {
	LastUpdated   time.Time
	TotalStations int
}

// UpstreamStats is the aggregate reported by the upstream directory.
type UpstreamStats struct {
	Stations       int
	StationsBroken int
	Tags           int
	ClicksLastHour int
	ClicksLastDay  int
	Languages      int
	Countries      int
}

// UpstreamLanguage is one raw language label as listed by the upstream directory.
type UpstreamLanguage struct {
	Name         string
	ISO639       string
	StationCount int
}
