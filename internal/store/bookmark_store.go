package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// DateAddedLayout is the format of Bookmark.DateAdded.
const DateAddedLayout = "2006-01-02 15:04:05"

// Bookmark represents a row in the bookmarks table hydrated with its tags.
type Bookmark struct {
	ID        int64    `db:"id"`
	Title     string   `db:"title"`
	URL       string   `db:"url"`
	Notes     string   `db:"notes"`
	DateAdded string   `db:"date_added"`
	Tags      []string `db:"-"`
}

// NewBookmark is the input to BookmarkStore.Add.
type NewBookmark struct {
	Title string
	URL   string
	Notes string
	Tags  []string
}

// Clock supplies the creation timestamp of new bookmarks.
type Clock func() time.Time

// Option configures a BookmarkStore.
type Option func(*BookmarkStore)

// WithClock replaces time.Now as the source of date_added.
func WithClock(c Clock) Option {
	return func(s *BookmarkStore) { s.now = c }
}

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *BookmarkStore) { s.log = l }
}

// BookmarkStore is the sqlx-backed implementation of BookmarkStoreIface.
type BookmarkStore struct {
	db      *sqlx.DB
	tags    *TagStore
	dialect dialect
	now     Clock
	log     *slog.Logger
}

func NewBookmarkStore(db *sqlx.DB, tags *TagStore, opts ...Option) *BookmarkStore {
	s := &BookmarkStore{
		db:      db,
		tags:    tags,
		dialect: dialectFor(db.DriverName()),
		now:     time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// q rebinds ? placeholders to the driver's native format ($1,$2,... for PostgreSQL).
func (s *BookmarkStore) q(query string) string { return s.db.Rebind(query) }

// bookmarkColumns selects a bookmark row under alias. notes and date_added
// may be NULL in stores created before they became NOT NULL.
func bookmarkColumns(alias string) string {
	p := ""
	if alias != "" {
		p = alias + "."
	}
	return p + "id, " + p + "title, " + p + "url, " +
		"COALESCE(" + p + "notes, '') AS notes, " +
		"COALESCE(" + p + "date_added, '') AS date_added"
}

// Add inserts a bookmark stamped with the current time and links its tags,
// all in one transaction, and returns the new id. The url is stored trimmed.
// A url that is already stored yields ErrDuplicateURL and writes nothing.
func (s *BookmarkStore) Add(ctx context.Context, nb NewBookmark) (int64, error) {
	if err := ValidateURL(nb.URL); err != nil {
		return 0, err
	}
	nb.URL = strings.TrimSpace(nb.URL)
	dateAdded := s.now().Format(DateAddedLayout)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.q(`
		INSERT INTO bookmarks (title, url, notes, date_added) VALUES (?, ?, ?, ?)
	`), nb.Title, nb.URL, nb.Notes, dateAdded)
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateURL, nb.URL)
		}
		return 0, fmt.Errorf("insert bookmark: %w", err)
	}

	// Looked up by url rather than LastInsertId, which lib/pq does not support.
	var id int64
	if err := tx.GetContext(ctx, &id, s.q(`SELECT id FROM bookmarks WHERE url = ?`), nb.URL); err != nil {
		return 0, fmt.Errorf("read new bookmark id: %w", err)
	}

	if err := s.tags.EnsureLinked(ctx, tx, id, nb.Tags); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	s.log.Debug("bookmark added", "id", id, "url", nb.URL)
	return id, nil
}

// Delete removes a bookmark by ID. CASCADE deletes handle tags_to_bookmarks.
// Deleting an id that does not exist is a no-op.
func (s *BookmarkStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.q(`DELETE FROM bookmarks WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil {
		s.log.Debug("bookmark delete", "id", id, "rows", n)
	}
	return nil
}

// GetByID returns the bookmark matching id with its tags, or ErrNotFound.
func (s *BookmarkStore) GetByID(ctx context.Context, id int64) (*Bookmark, error) {
	var b Bookmark
	err := s.db.GetContext(ctx, &b, s.q(`SELECT `+bookmarkColumns("")+` FROM bookmarks WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, []*Bookmark{&b}); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListAll returns all bookmarks ordered by id with their tags.
func (s *BookmarkStore) ListAll(ctx context.Context) ([]*Bookmark, error) {
	return s.selectHydrated(ctx, `SELECT `+bookmarkColumns("")+` FROM bookmarks ORDER BY id ASC`)
}

// Exists reports whether a bookmark with id is stored.
func (s *BookmarkStore) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, s.q(`SELECT COUNT(*) FROM bookmarks WHERE id = ?`), id); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of stored bookmarks.
func (s *BookmarkStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM bookmarks`); err != nil {
		return 0, err
	}
	return n, nil
}

// URLOf returns the url of the bookmark with id, or ErrNotFound. It never
// returns an empty string with a nil error.
func (s *BookmarkStore) URLOf(ctx context.Context, id int64) (string, error) {
	var url string
	err := s.db.GetContext(ctx, &url, s.q(`SELECT url FROM bookmarks WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

// selectHydrated runs query and fills in each row's tags. Rows are fully read
// before hydration starts, so the single SQLite connection is free for the
// per-row tag lookups.
func (s *BookmarkStore) selectHydrated(ctx context.Context, query string, args ...any) ([]*Bookmark, error) {
	bookmarks := []*Bookmark{}
	if err := s.db.SelectContext(ctx, &bookmarks, s.q(query), args...); err != nil {
		return nil, err
	}
	if err := s.hydrate(ctx, bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// hydrate loads tags with one query per bookmark. Nothing is cached; this is
// sized for a personal catalogue.
func (s *BookmarkStore) hydrate(ctx context.Context, bookmarks []*Bookmark) error {
	for _, b := range bookmarks {
		names, err := s.tags.NamesFor(ctx, s.db, b.ID)
		if err != nil {
			return fmt.Errorf("load tags for bookmark %d: %w", b.ID, err)
		}
		b.Tags = names
	}
	return nil
}
