package canon

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestCanonicalize_KnownSpellings(t *testing.T) {
	t.Parallel()
	c := New()

	tests := []struct {
		input string
		want  string
	}{
		{input: "english", want: "English"},
		{input: "English UK", want: "English"},
		{input: "  engilsh  ", want: "English"},
		{input: "ENGLSH", want: "English"},
		{input: "Mandarin Chinese", want: "Chinese"},
		{input: "中文", want: "Chinese"},
		{input: "Cantonese", want: "Chinese"},
		{input: "Español", want: "Spanish"},
		{input: "ESPAÑOL MEXICO", want: "Spanish"},
		{input: "Português (Brasil)", want: "Portuguese"},
		{input: "português  brasil", want: "Portuguese"},
		{input: "Deutsch", want: "German"},
		{input: "русский", want: "Russian"},
		{input: "Язык: Русский", want: "Russian"},
		{input: "한국어", want: "Korean"},
		{input: "Filipino", want: "Tagalog"},
		{input: "isiNdebele", want: "IsiNdebele"},
		{input: "\tHipHop\n", want: "Music"},
		{input: "Top 40", want: "Music"},
		{input: "rock", want: "Music"},
		{input: "english/", want: "English"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := c.Canonicalize(tt.input); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalize_EveryTableEntry(t *testing.T) {
	t.Parallel()
	c := New()

	for raw, want := range languageTable {
		variants := []string{raw, strings.ToUpper(raw), "  " + raw + " ", "\t" + upperFirst(raw)}
		for _, in := range variants {
			if got := c.Canonicalize(in); got != want {
				t.Errorf("Canonicalize(%q) = %q, want %q", in, got, want)
			}
		}
	}
}

func TestCanonicalize_Fallback(t *testing.T) {
	t.Parallel()
	c := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "lowercase word", input: "klingon", want: "Klingon"},
		{name: "rest untouched", input: "eSPERANTO", want: "ESPERANTO"},
		{name: "already capitalized", input: "Quenya", want: "Quenya"},
		{name: "mixed case kept", input: "sindarin Elvish", want: "Sindarin Elvish"},
		{name: "non ascii first rune", input: "ελληνικά", want: "Ελληνικά"},
		{name: "full case mapping", input: "ßprache", want: "SSprache"},
		{name: "digit first", input: "1live", want: "1live"},
		{name: "padding not trimmed", input: " klingon", want: " klingon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := c.Canonicalize(tt.input); got != tt.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalize_NFCLookup(t *testing.T) {
	t.Parallel()
	c := New()

	// "español" with a combining tilde instead of the precomposed ñ.
	decomposed := "espan\u0303ol"
	if got := c.Canonicalize(decomposed); got != "Spanish" {
		t.Errorf("Canonicalize(decomposed) = %q, want %q", got, "Spanish")
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()
	c := New()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "english uk", want: []string{"English"}},
		{name: "list", input: "english,german", want: []string{"English", "German"}},
		{name: "segments trimmed", input: " deutsch , français ", want: []string{"German", "French"}},
		{name: "empty segments dropped", input: "english,, ,russian,", want: []string{"English", "Russian"}},
		{name: "canonical duplicates collapsed", input: "english,british english,engels", want: []string{"English"}},
		{name: "unmapped fallback", input: "klingon,english", want: []string{"Klingon", "English"}},
		{name: "only commas", input: ", ,", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Languages(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Languages(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c := New()

	if name, ok := c.lookup(" Nederlands "); !ok || name != "Dutch" {
		t.Errorf("lookup(Nederlands) = %q, %v", name, ok)
	}
	if _, ok := c.lookup("klingon"); ok {
		t.Error("lookup(klingon) should miss")
	}
}

func TestNewWithTable_NormalizesKeys(t *testing.T) {
	t.Parallel()

	src := map[string]string{"  Klingon ": "Klingon", "tlhIngan Hol": "Klingon"}
	c := NewWithTable(src)

	if got := c.Canonicalize("TLHINGAN HOL"); got != "Klingon" {
		t.Errorf("Canonicalize = %q, want Klingon", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	// Mutating the source must not affect the canonicalizer.
	src["vulcan"] = "Vulcan"
	if _, ok := c.lookup("vulcan"); ok {
		t.Error("table should have been copied")
	}
}

func TestCanonicalize_Concurrent(t *testing.T) {
	t.Parallel()
	c := New()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				if got := c.Canonicalize("ßprache"); got != "SSprache" {
					t.Errorf("Canonicalize = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
