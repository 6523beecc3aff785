package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// IndexFile is the name of the summary index artifact.
const IndexFile = "index.json"

// Station is the public shape of an exported station. Telemetry is omitted.
type Station struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Favicon  string   `json:"favicon"`
	Tags     []string `json:"tags"`
	Country  string   `json:"country"`
	State    string   `json:"state"`
	Language string   `json:"language"`
	Votes    int      `json:"votes"`
	Codec    string   `json:"codec"`
	Bitrate  int      `json:"bitrate"`
	Homepage string   `json:"homepage"`
}

// LanguageFile is the content of one per-language artifact.
type LanguageFile struct {
	Language string    `json:"language"`
	Count    int       `json:"count"`
	Stations []Station `json:"stations"`
}

// IndexEntry describes one exported language in the index.
type IndexEntry struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
	Filename string `json:"filename"`
}

// Index is the content of index.json.
type Index struct {
	TotalLanguages int          `json:"total_languages"`
	TotalStations  int          `json:"total_stations"`
	Languages      []IndexEntry `json:"languages"`
}

// Artifacts is the full export output. Files[i] is stored under
// Index.Languages[i].Filename.
type Artifacts struct {
	Files   []LanguageFile
	Index   Index
	Dropped int
}

type bucket struct {
	language string
	stations []domain.Station
}

// BuildArtifacts groups station×language pairs by language and keeps the
// languages with strictly more than threshold stations. Stations are sorted
// by votes descending, keeping input order on ties; languages are sorted by
// count descending, keeping first-appearance order on ties. Pairs with an
// empty language are ignored.
func BuildArtifacts(pairs []domain.StationLanguage, threshold int) Artifacts {
	var buckets []*bucket
	byName := make(map[string]*bucket)
	for _, p := range pairs {
		if p.Language == "" {
			continue
		}
		b, ok := byName[p.Language]
		if !ok {
			b = &bucket{language: p.Language}
			byName[p.Language] = b
			buckets = append(buckets, b)
		}
		b.stations = append(b.stations, p.Station)
	}

	kept := buckets[:0:0]
	dropped := 0
	for _, b := range buckets {
		if len(b.stations) > threshold {
			kept = append(kept, b)
		} else {
			dropped++
		}
	}

	slices.SortStableFunc(kept, func(a, b *bucket) int {
		return len(b.stations) - len(a.stations)
	})

	out := Artifacts{
		Files:   make([]LanguageFile, 0, len(kept)),
		Index:   Index{Languages: make([]IndexEntry, 0, len(kept))},
		Dropped: dropped,
	}
	names := newFilenames()
	for _, b := range kept {
		slices.SortStableFunc(b.stations, func(x, y domain.Station) int {
			return y.Votes - x.Votes
		})

		file := LanguageFile{
			Language: b.language,
			Count:    len(b.stations),
			Stations: make([]Station, len(b.stations)),
		}
		for i, s := range b.stations {
			file.Stations[i] = publicStation(s, b.language)
		}

		out.Files = append(out.Files, file)
		out.Index.Languages = append(out.Index.Languages, IndexEntry{
			Language: b.language,
			Count:    file.Count,
			Filename: names.next(domain.Slugify(b.language)),
		})
		out.Index.TotalStations += file.Count
	}
	out.Index.TotalLanguages = len(out.Files)

	return out
}

func publicStation(s domain.Station, language string) Station {
	tags := domain.SplitList(s.Tags)
	if tags == nil {
		tags = []string{}
	}
	return Station{
		ID:       s.ID,
		Name:     s.Name,
		URL:      s.URL,
		Favicon:  s.Favicon,
		Tags:     tags,
		Country:  s.Country,
		State:    s.State,
		Language: language,
		Votes:    s.Votes,
		Codec:    s.Codec,
		Bitrate:  s.Bitrate,
		Homepage: s.Homepage,
	}
}

// filenames hands out "<slug>.json", suffixing repeated slugs with -2, -3...
type filenames struct {
	taken map[string]bool
}

func newFilenames() *filenames {
	return &filenames{taken: map[string]bool{IndexFile: true}}
}

func (f *filenames) next(slug string) string {
	name := slug + ".json"
	for n := 2; f.taken[name]; n++ {
		name = fmt.Sprintf("%s-%d.json", slug, n)
	}
	f.taken[name] = true
	return name
}

// Encode renders v as two-space indented JSON without HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
