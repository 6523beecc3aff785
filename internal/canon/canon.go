// Package canon normalizes free-text language labels into a controlled
// vocabulary of canonical language names.
package canon

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/radiocatalog/internal/domain"
)

// Canonicalizer maps raw language labels to canonical names using an
// immutable lookup table. The zero value is not usable; construct with New.
// A Canonicalizer is safe for concurrent use.
type Canonicalizer struct {
	table map[string]string
}

// New builds a Canonicalizer from the built-in table.
func New() *Canonicalizer {
	return NewWithTable(languageTable)
}

// NewWithTable builds a Canonicalizer from a custom raw->canonical table.
// Keys are normalized the same way lookups are, so callers may pass mixed case.
// The table is copied.
func NewWithTable(table map[string]string) *Canonicalizer {
	t := make(map[string]string, len(table))
	for raw, name := range table {
		t[lookupKey(raw)] = name
	}
	return &Canonicalizer{table: t}
}

// Canonicalize returns the canonical name for raw. Known spellings are matched
// case-insensitively after trimming. Unknown labels are returned as given with
// only the first character upper-cased. Empty input is returned unchanged.
func (c *Canonicalizer) Canonicalize(raw string) string {
	if name, ok := c.lookup(raw); ok {
		return name
	}
	return upperFirst(raw)
}

// Languages splits a comma-delimited raw language field and canonicalizes
// each segment. Empty segments are discarded and the result holds each
// canonical name once, in first-appearance order.
func (c *Canonicalizer) Languages(raw string) []string {
	segments := domain.SplitList(raw)
	if len(segments) == 0 {
		return nil
	}

	out := make([]string, 0, len(segments))
	seen := make(map[string]bool, len(segments))
	for _, seg := range segments {
		name := c.Canonicalize(seg)
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// lookup reports the table entry for raw without applying the fallback rule.
func (c *Canonicalizer) lookup(raw string) (string, bool) {
	name, ok := c.table[lookupKey(raw)]
	return name, ok
}

// Len returns the number of table entries.
func (c *Canonicalizer) Len() int { return len(c.table) }

func lookupKey(raw string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(raw)))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// cases.Caser is stateful and not safe for concurrent use.
	first := cases.Upper(language.Und).String(s[:size])
	return first + s[size:]
}
