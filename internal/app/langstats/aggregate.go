// Package langstats folds the upstream language listing into canonical
// languages and reports how the raw labels are distributed.
package langstats

import (
	"slices"

	"github.com/heartmarshall/radiocatalog/internal/canon"
	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// Language is one canonical language with the upstream labels folded into it.
type Language struct {
	Name           string   `json:"name"`
	ISO639         string   `json:"iso_639"`
	StationCount   int      `json:"stationcount"`
	Variations     []string `json:"variations"`
	KnownSpellings int      `json:"known_spellings"`
}

// Aggregate groups upstream language rows by canonical name. Station counts
// are summed, the first non-empty ISO 639 code is kept, and distinct raw
// labels are collected in first-appearance order. The result is sorted by
// station count descending; ties keep first-appearance order.
func Aggregate(c *canon.Canonicalizer, idx canon.ReverseIndex, langs []domain.UpstreamLanguage) []Language {
	var out []*Language
	byName := make(map[string]*Language)
	seen := make(map[string]map[string]bool)

	for _, l := range langs {
		name := c.Canonicalize(l.Name)
		agg, ok := byName[name]
		if !ok {
			agg = &Language{Name: name, Variations: []string{}, KnownSpellings: idx.Count(name)}
			byName[name] = agg
			seen[name] = make(map[string]bool)
			out = append(out, agg)
		}
		if agg.ISO639 == "" {
			agg.ISO639 = l.ISO639
		}
		agg.StationCount += l.StationCount
		if !seen[name][l.Name] {
			seen[name][l.Name] = true
			agg.Variations = append(agg.Variations, l.Name)
		}
	}

	result := make([]Language, len(out))
	for i, l := range out {
		result[i] = *l
	}
	slices.SortStableFunc(result, func(a, b Language) int {
		return b.StationCount - a.StationCount
	})
	return result
}
