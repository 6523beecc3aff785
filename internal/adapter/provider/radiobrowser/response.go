package radiobrowser

import "github.com/heartmarshall/radiocatalog/internal/domain"

// apiStats is the /stats payload.
type apiStats struct {
	Stations       int `json:"stations"`
	StationsBroken int `json:"stations_broken"`
	Tags           int `json:"tags"`
	ClicksLastHour int `json:"clicks_last_hour"`
	ClicksLastDay  int `json:"clicks_last_day"`
	Languages      int `json:"languages"`
	Countries      int `json:"countries"`
}

// apiStation is one element of the /stations payload.
type apiStation struct {
	StationUUID     string   `json:"stationuuid"`
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	Homepage        string   `json:"homepage"`
	Favicon         string   `json:"favicon"`
	Tags            string   `json:"tags"`
	Country         string   `json:"country"`
	State           string   `json:"state"`
	Language        string   `json:"language"`
	Votes           int      `json:"votes"`
	Codec           string   `json:"codec"`
	Bitrate         int      `json:"bitrate"`
	LastCheckOK     int      `json:"lastcheckok"`
	LastCheckTime   string   `json:"lastchecktime"`
	ClickTimestamp  string   `json:"clicktimestamp"`
	ClickCount      int      `json:"clickcount"`
	ClickTrend      int      `json:"clicktrend"`
	SSLError        int      `json:"ssl_error"`
	GeoLat          *float64 `json:"geo_lat"`
	GeoLong         *float64 `json:"geo_long"`
	HasExtendedInfo bool     `json:"has_extended_info"`
}

// apiLanguage is one element of the /languages payload.
type apiLanguage struct {
	Name         string `json:"name"`
	ISO639       string `json:"iso_639"`
	StationCount int    `json:"stationcount"`
}

func (s apiStats) toDomain() domain.UpstreamStats {
	return domain.UpstreamStats{
		Stations:       s.Stations,
		StationsBroken: s.StationsBroken,
		Tags:           s.Tags,
		ClicksLastHour: s.ClicksLastHour,
		ClicksLastDay:  s.ClicksLastDay,
		Languages:      s.Languages,
		Countries:      s.Countries,
	}
}

func (s apiStation) toDomain() domain.Station {
	return domain.Station{
		ID:       s.StationUUID,
		Name:     s.Name,
		URL:      s.URL,
		Favicon:  s.Favicon,
		Tags:     s.Tags,
		Country:  s.Country,
		State:    s.State,
		Language: s.Language,
		Votes:    s.Votes,
		Codec:    s.Codec,
		Bitrate:  s.Bitrate,
		Homepage: s.Homepage,
		Telemetry: domain.Telemetry{
			LastCheckOK:     s.LastCheckOK,
			LastCheckTime:   s.LastCheckTime,
			ClickTimestamp:  s.ClickTimestamp,
			ClickCount:      s.ClickCount,
			ClickTrend:      s.ClickTrend,
			SSLError:        s.SSLError,
			GeoLat:          s.GeoLat,
			GeoLong:         s.GeoLong,
			HasExtendedInfo: s.HasExtendedInfo,
		},
	}
}
