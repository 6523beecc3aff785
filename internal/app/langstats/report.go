package langstats

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
)

const (
	topByStations   = 10
	topByVariations = 5
)

// Ranked is a language with its share of all language-tagged stations.
type Ranked struct {
	Language
	Percent float64
}

// Report summarizes an aggregate.
type Report struct {
	TotalStations         int
	UniqueLanguages       int
	LanguagesWithStations int
	TopByStations         []Ranked
	TopByVariations       []Language
}

// Summarize computes totals, the top languages by station count with their
// percentage (one decimal), and the languages with the most raw variations.
// langs must already be sorted by station count.
func Summarize(langs []Language) Report {
	r := Report{UniqueLanguages: len(langs)}
	for _, l := range langs {
		r.TotalStations += l.StationCount
		if l.StationCount > 0 {
			r.LanguagesWithStations++
		}
	}

	for _, l := range langs[:min(topByStations, len(langs))] {
		pct := 0.0
		if r.TotalStations > 0 {
			pct = math.Round(float64(l.StationCount)/float64(r.TotalStations)*1000) / 10
		}
		r.TopByStations = append(r.TopByStations, Ranked{Language: l, Percent: pct})
	}

	byVar := slices.Clone(langs)
	slices.SortStableFunc(byVar, func(a, b Language) int {
		return len(b.Variations) - len(a.Variations)
	})
	r.TopByVariations = byVar[:min(topByVariations, len(byVar))]

	return r
}

// Log writes the report as structured log lines.
func (r Report) Log(ctx context.Context, log *slog.Logger) {
	log.InfoContext(ctx, "language statistics",
		slog.Int("total_stations", r.TotalStations),
		slog.Int("unique_languages", r.UniqueLanguages),
		slog.Int("languages_with_stations", r.LanguagesWithStations),
	)
	for i, l := range r.TopByStations {
		log.InfoContext(ctx, "top language by stations",
			slog.Int("rank", i+1),
			slog.String("language", l.Name),
			slog.Int("stations", l.StationCount),
			slog.Float64("percent", l.Percent),
			slog.String("variations", strings.Join(l.Variations, ", ")),
		)
	}
	for i, l := range r.TopByVariations {
		log.InfoContext(ctx, "top language by variations",
			slog.Int("rank", i+1),
			slog.String("language", l.Name),
			slog.Int("variations", len(l.Variations)),
			slog.String("labels", strings.Join(l.Variations, ", ")),
		)
	}
}
