package store

import (
	"context"
	"strings"
)

type searchMode int

const (
	searchByTag searchMode = iota
	searchByText
)

// buildSearchQuery returns a parameterized query selecting the bookmarks that
// match any of patterns, in id order. Candidate ids come from a join subquery
// and are tested with IN, so a bookmark matching through several tags or
// patterns is returned once. Patterns are bound, never interpolated.
func buildSearchQuery(d dialect, mode searchMode, patterns []string) (string, []any, error) {
	patterns, err := searchPatterns(patterns)
	if err != nil {
		return "", nil, err
	}

	var from, haystack string
	switch mode {
	case searchByTag:
		from = `SELECT tb.bookmark_id FROM tags_to_bookmarks tb
			INNER JOIN tags t ON t.id = tb.tag_id`
		haystack = "t.name"
	default:
		from = `SELECT m.id FROM bookmarks m
			LEFT JOIN tags_to_bookmarks tb ON tb.bookmark_id = m.id
			LEFT JOIN tags t ON t.id = tb.tag_id`
		haystack = d.concat("COALESCE(t.name, '')", "m.title", "m.url")
	}

	preds := make([]string, len(patterns))
	args := make([]any, len(patterns))
	for i, p := range patterns {
		preds[i] = d.contains(haystack)
		args[i] = p
	}

	query := `SELECT ` + bookmarkColumns("b") + ` FROM bookmarks b
		WHERE b.id IN (` + from + `
			WHERE ` + strings.Join(preds, " OR ") + `)
		ORDER BY b.id ASC`
	return query, args, nil
}

// SearchByTags returns every bookmark with at least one tag whose name
// contains any of patterns (case-sensitive, unanchored), in id order.
func (s *BookmarkStore) SearchByTags(ctx context.Context, patterns []string) ([]*Bookmark, error) {
	query, args, err := buildSearchQuery(s.dialect, searchByTag, patterns)
	if err != nil {
		return nil, err
	}
	return s.selectHydrated(ctx, query, args...)
}

// SearchByText returns every bookmark where the concatenation of one of its
// tag names, its title and its url contains any of patterns, in id order.
// An untagged bookmark is tested as title+url.
//
// Fields are concatenated without a separator, so a pattern spanning the
// tag/title or title/url boundary matches: tag "go" and title "lang" match
// "golang".
func (s *BookmarkStore) SearchByText(ctx context.Context, patterns []string) ([]*Bookmark, error) {
	query, args, err := buildSearchQuery(s.dialect, searchByText, patterns)
	if err != nil {
		return nil, err
	}
	return s.selectHydrated(ctx, query, args...)
}
