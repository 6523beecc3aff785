package canon

import "sort"

// ReverseIndex lists, for each canonical name, every table spelling that maps
// to it. It is built once and never mutated.
type ReverseIndex struct {
	variations map[string][]string
}

// NewReverseIndex builds the canonical->spellings index from the
// Canonicalizer's table. Spellings are sorted for deterministic output.
func NewReverseIndex(c *Canonicalizer) ReverseIndex {
	v := make(map[string][]string)
	for raw, name := range c.table {
		v[name] = append(v[name], raw)
	}
	for name := range v {
		sort.Strings(v[name])
	}
	return ReverseIndex{variations: v}
}

// spellings returns a copy of the known spellings for a canonical name.
func (r ReverseIndex) spellings(name string) []string {
	src := r.variations[name]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Count returns the number of known spellings for a canonical name.
func (r ReverseIndex) Count(name string) int { return len(r.variations[name]) }

// names returns every canonical name in the index, sorted.
func (r ReverseIndex) names() []string {
	names := make([]string, 0, len(r.variations))
	for name := range r.variations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
