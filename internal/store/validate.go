package store

import "strings"

// ValidateURL checks that url is present. Uniqueness is not checked here; it
// is enforced by the unique index on bookmarks.url.
func ValidateURL(url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	return nil
}

// NormalizeTagNames trims each name, drops empty names and collapses
// duplicates to their first occurrence. Matching is case-sensitive: "Go" and
// "go" are different tags.
func NormalizeTagNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// searchPatterns drops empty patterns, which would otherwise match every row,
// and reports ErrNoSearchTerms when nothing is left.
func searchPatterns(patterns []string) ([]string, error) {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, ErrNoSearchTerms
	}
	return out, nil
}
