package canon

import (
	"reflect"
	"slices"
	"testing"
)

func TestReverseIndex(t *testing.T) {
	t.Parallel()

	c := NewWithTable(map[string]string{
		"deutsch": "German",
		"german":  "German",
		"deu":     "German",
		"dutch":   "Dutch",
	})
	idx := NewReverseIndex(c)

	if got, want := idx.spellings("German"), []string{"deu", "deutsch", "german"}; !reflect.DeepEqual(got, want) {
		t.Errorf("spellings(German) = %v, want %v", got, want)
	}
	if idx.Count("Dutch") != 1 {
		t.Errorf("Count(Dutch) = %d, want 1", idx.Count("Dutch"))
	}
	if idx.spellings("Klingon") != nil {
		t.Error("unknown name should have no variations")
	}
	if got, want := idx.names(), []string{"Dutch", "German"}; !reflect.DeepEqual(got, want) {
		t.Errorf("names() = %v, want %v", got, want)
	}
}

func TestReverseIndex_VariationsIsCopy(t *testing.T) {
	t.Parallel()

	idx := NewReverseIndex(New())
	v := idx.spellings("English")
	if len(v) == 0 {
		t.Fatal("English should have variations")
	}
	v[0] = "mutated"
	if slices.Contains(idx.spellings("English"), "mutated") {
		t.Error("Variations must return a copy")
	}
}

func TestReverseIndex_CoversTable(t *testing.T) {
	t.Parallel()

	c := New()
	idx := NewReverseIndex(c)

	total := 0
	for _, name := range idx.names() {
		total += idx.Count(name)
	}
	if total != c.Len() {
		t.Errorf("reverse index holds %d spellings, table has %d", total, c.Len())
	}
	if !slices.Contains(idx.spellings("Chinese"), "mandarin chinese") {
		t.Error("Chinese variations should include mandarin chinese")
	}
}
