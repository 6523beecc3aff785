package domain

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "only spaces", input: "   ", want: nil},
		{name: "single", input: "rock", want: []string{"rock"}},
		{name: "trims segments", input: " rock , pop ", want: []string{"rock", "pop"}},
		{name: "drops empty segments", input: "rock,,  ,pop,", want: []string{"rock", "pop"}},
		{name: "case preserved", input: "Rock,rock", want: []string{"Rock", "rock"}},
		{name: "duplicates dropped", input: "news,talk,news", want: []string{"news", "talk"}},
		{name: "only commas", input: ",,,", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SplitList(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "English", want: "english"},
		{input: "Spanish (Mexico)", want: "spanish--mexico-"},
		{input: "IsiNdebele", want: "isindebele"},
		{input: "Top 40", want: "top-40"},
		{input: "Español", want: "espa-ol"},
		{input: "中文", want: "--"},
		{input: "", want: ""},
		{input: "a_b.c", want: "a-b-c"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	t.Parallel()

	first := Slugify("Portuguese (Brazil)")
	for range 10 {
		if got := Slugify("Portuguese (Brazil)"); got != first {
			t.Fatalf("Slugify not deterministic: %q vs %q", got, first)
		}
	}
}
