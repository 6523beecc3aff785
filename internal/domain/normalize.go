package domain

import (
	"strings"
)

// SplitList splits a comma-delimited raw field into trimmed, non-empty
// segments. Duplicates are dropped; first appearance wins. Case is preserved.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// Slugify derives a file-safe name: the text is lower-cased and every code
// point outside [a-z0-9] is replaced with '-'. No trimming or collapsing is
// applied, so "Spanish (Mexico)" becomes "spanish--mexico-".
func Slugify(name string) string {
	name = strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('-')
	}
	return b.String()
}
