package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Tag represents a row in the tags table.
type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// TagWithCount is a Tag with the number of bookmarks linked to it.
type TagWithCount struct {
	Tag
	Count int `db:"count"`
}

// TagStore is the sqlx-backed implementation of TagStoreIface. It also owns
// the linking of tags to bookmarks and the tag lookup used for hydration.
type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// EnsureLinked makes sure every name exists exactly once in tags and is linked
// to bookmarkID exactly once, processing names in input order. Calling it again
// with the same arguments writes nothing. Names are normalized with
// NormalizeTagNames first. ext is the transaction (or handle) the caller is
// writing the bookmark with.
func (s *TagStore) EnsureLinked(ctx context.Context, ext sqlx.ExtContext, bookmarkID int64, names []string) error {
	for _, name := range NormalizeTagNames(names) {
		tagID, err := s.ensureTag(ctx, ext, name)
		if err != nil {
			return fmt.Errorf("ensure tag %q: %w", name, err)
		}
		if err := s.ensureLink(ctx, ext, bookmarkID, tagID); err != nil {
			return fmt.Errorf("link tag %q: %w", name, err)
		}
	}
	return nil
}

// ensureTag returns the id of the tag called name, inserting it if absent.
func (s *TagStore) ensureTag(ctx context.Context, ext sqlx.ExtContext, name string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, ext, &id, ext.Rebind(`SELECT id FROM tags WHERE name = ?`), name)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	_, err = ext.ExecContext(ctx, ext.Rebind(`INSERT INTO tags (name) VALUES (?)`), name)
	if err != nil && !isUniqueConstraintError(err) {
		return 0, err
	}
	// Either freshly inserted or inserted by another handle in the meantime.
	if err := sqlx.GetContext(ctx, ext, &id, ext.Rebind(`SELECT id FROM tags WHERE name = ?`), name); err != nil {
		return 0, err
	}
	return id, nil
}

// ensureLink inserts the (bookmarkID, tagID) pair unless it already exists.
// The pair is checked first rather than relying on the unique index, because a
// failed insert aborts the surrounding transaction on PostgreSQL.
func (s *TagStore) ensureLink(ctx context.Context, ext sqlx.ExtContext, bookmarkID, tagID int64) error {
	var n int
	err := sqlx.GetContext(ctx, ext, &n, ext.Rebind(`
		SELECT COUNT(*) FROM tags_to_bookmarks WHERE bookmark_id = ? AND tag_id = ?
	`), bookmarkID, tagID)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = ext.ExecContext(ctx, ext.Rebind(`
		INSERT INTO tags_to_bookmarks (bookmark_id, tag_id) VALUES (?, ?)
	`), bookmarkID, tagID)
	return err
}

// NamesFor returns the tag names linked to bookmarkID in the order the links
// were created. It never returns nil.
func (s *TagStore) NamesFor(ctx context.Context, q sqlx.QueryerContext, bookmarkID int64) ([]string, error) {
	names := []string{}
	err := sqlx.SelectContext(ctx, q, &names, s.db.Rebind(`
		SELECT t.name FROM tags t
		INNER JOIN tags_to_bookmarks tb ON tb.tag_id = t.id
		WHERE tb.bookmark_id = ?
		ORDER BY tb.id ASC
	`), bookmarkID)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// ListWithCounts returns every tag with its bookmark count, ordered by name.
// Orphaned tags are included with a count of zero; tags are never removed.
func (s *TagStore) ListWithCounts(ctx context.Context) ([]*TagWithCount, error) {
	tags := []*TagWithCount{}
	err := s.db.SelectContext(ctx, &tags, `
		SELECT t.id, t.name, COUNT(tb.id) AS count
		FROM tags t
		LEFT JOIN tags_to_bookmarks tb ON tb.tag_id = t.id
		GROUP BY t.id, t.name
		ORDER BY t.name ASC
	`)
	if err != nil {
		return nil, err
	}
	return tags, nil
}
