package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/bookie/internal/store"
	"github.com/joestump/bookie/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

// newTestEnv creates a bookmark store and tag store sharing one in-memory DB.
func newTestEnv(t *testing.T) (*store.BookmarkStore, *store.TagStore, *sqlx.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	tags := store.NewTagStore(db)
	bs := store.NewBookmarkStore(db, tags, store.WithClock(func() time.Time { return fixedNow }))
	return bs, tags, db
}

func mustAdd(t *testing.T, bs *store.BookmarkStore, title, url string, tags ...string) int64 {
	t.Helper()
	id, err := bs.Add(context.Background(), store.NewBookmark{Title: title, URL: url, Tags: tags})
	require.NoError(t, err)
	return id
}

func countRows(t *testing.T, db *sqlx.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM `+table))
	return n
}

func TestBookmarkStore_AddAndGetByID(t *testing.T) {
	bs, _, _ := newTestEnv(t)
	ctx := context.Background()

	id, err := bs.Add(ctx, store.NewBookmark{
		Title: "Go",
		URL:   "https://go.dev",
		Notes: "language home",
		Tags:  []string{"golang", "docs", "golang", "lang"},
	})
	require.NoError(t, err)

	got, err := bs.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Go", got.Title)
	assert.Equal(t, "https://go.dev", got.URL)
	assert.Equal(t, "language home", got.Notes)
	assert.Equal(t, "2024-03-09 14:05:07", got.DateAdded)
	assert.Equal(t, []string{"golang", "docs", "lang"}, got.Tags)
}

func TestBookmarkStore_Add_EmptyTitleAndNotes(t *testing.T) {
	bs, _, _ := newTestEnv(t)
	ctx := context.Background()

	id := mustAdd(t, bs, "", "https://example.com")

	got, err := bs.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got.Title)
	assert.Empty(t, got.Notes)
	assert.NotNil(t, got.Tags)
	assert.Empty(t, got.Tags)
}

func TestBookmarkStore_Add_EmptyURL(t *testing.T) {
	bs, _, _ := newTestEnv(t)

	_, err := bs.Add(context.Background(), store.NewBookmark{Title: "nothing", URL: "  "})
	assert.ErrorIs(t, err, store.ErrEmptyURL)
}

func TestBookmarkStore_Add_DuplicateURL(t *testing.T) {
	bs, _, db := newTestEnv(t)
	ctx := context.Background()

	mustAdd(t, bs, "first", "https://example.com", "a")

	_, err := bs.Add(ctx, store.NewBookmark{Title: "second", URL: "https://example.com", Tags: []string{"b"}})
	require.ErrorIs(t, err, store.ErrDuplicateURL)

	n, err := bs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	// The rejected add must not leave its tags behind.
	assert.Equal(t, 1, countRows(t, db, "tags"))
	assert.Equal(t, 1, countRows(t, db, "tags_to_bookmarks"))
}

func TestBookmarkStore_Add_TrimsURL(t *testing.T) {
	bs, _, _ := newTestEnv(t)
	ctx := context.Background()

	id := mustAdd(t, bs, "Go", "  https://go.dev \n")

	url, err := bs.URLOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", url)

	_, err = bs.Add(ctx, store.NewBookmark{Title: "Go again", URL: "https://go.dev "})
	require.ErrorIs(t, err, store.ErrDuplicateURL)

	n, err := bs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBookmarkStore_Add_OtherFailureIsHardError(t *testing.T) {
	bs, _, db := newTestEnv(t)
	ctx := context.Background()

	mustAdd(t, bs, "Go", "https://go.dev")
	_, err := db.Exec(`DROP TABLE tags_to_bookmarks`)
	require.NoError(t, err)

	_, err = bs.Add(ctx, store.NewBookmark{Title: "Rust", URL: "https://rust-lang.org", Tags: []string{"rust"}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrDuplicateURL)

	// The bookmark row is rolled back with the failed tag link.
	n, err := bs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Zero(t, countRows(t, db, "tags"))
}

func TestBookmarkStore_ForeignKeysEnforced(t *testing.T) {
	bs, _, db := newTestEnv(t)

	mustAdd(t, bs, "Go", "https://go.dev", "golang")

	var tagID int64
	require.NoError(t, db.Get(&tagID, `SELECT id FROM tags WHERE name = ?`, "golang"))

	_, err := db.Exec(`INSERT INTO tags_to_bookmarks (bookmark_id, tag_id) VALUES (?, ?)`, 999, tagID)
	require.Error(t, err)
	assert.Equal(t, 1, countRows(t, db, "tags_to_bookmarks"))
}

func TestBookmarkStore_Delete_CascadesLinks(t *testing.T) {
	bs, _, db := newTestEnv(t)
	ctx := context.Background()

	id := mustAdd(t, bs, "Go", "https://go.dev", "golang", "docs")
	keep := mustAdd(t, bs, "Rust", "https://rust-lang.org", "docs")
	require.Equal(t, 3, countRows(t, db, "tags_to_bookmarks"))

	require.NoError(t, bs.Delete(ctx, id))

	all, err := bs.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep, all[0].ID)

	var residual int
	require.NoError(t, db.Get(&residual, `SELECT COUNT(*) FROM tags_to_bookmarks WHERE bookmark_id = ?`, id))
	assert.Zero(t, residual)

	// Re-adding the same url and tags creates fresh links only.
	again := mustAdd(t, bs, "Go", "https://go.dev", "golang", "docs")
	got, err := bs.GetByID(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "docs"}, got.Tags)
	assert.Equal(t, 3, countRows(t, db, "tags_to_bookmarks"))
}

func TestBookmarkStore_Delete_NonExistent(t *testing.T) {
	bs, _, _ := newTestEnv(t)
	ctx := context.Background()

	mustAdd(t, bs, "Go", "https://go.dev")

	require.NoError(t, bs.Delete(ctx, 999))

	n, err := bs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBookmarkStore_GetByID_NotFound(t *testing.T) {
	bs, _, _ := newTestEnv(t)

	_, err := bs.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBookmarkStore_ListAll_InsertionOrder(t *testing.T) {
	bs, _, _ := newTestEnv(t)
	ctx := context.Background()

	urls := []string{"https://c.example", "https://a.example", "https://b.example"}
	var ids []int64
	for _, u := range urls {
		ids = append(ids, mustAdd(t, bs, "", u))
	}

	all, err := bs.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(urls))
	for i, b := range all {
		assert.Equal(t, ids[i], b.ID)
		assert.Equal(t, urls[i], b.URL)
	}
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)
}

func TestBookmarkStore_ListAll_Empty(t *testing.T) {
	bs, _, _ := newTestEnv(t)

	all, err := bs.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestBookmarkStore_ExistsAndURLOf(t *testing.T) {
	bs, _, _ := newTestEnv(t)
	ctx := context.Background()

	id := mustAdd(t, bs, "Go", "https://go.dev")

	ok, err := bs.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bs.Exists(ctx, id+1)
	require.NoError(t, err)
	assert.False(t, ok)

	url, err := bs.URLOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", url)

	_, err = bs.URLOf(ctx, id+1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestBookmarkStore_DefaultClockFormat(t *testing.T) {
	db := testutil.NewTestDB(t)
	bs := store.NewBookmarkStore(db, store.NewTagStore(db))
	ctx := context.Background()

	before := time.Now().Truncate(time.Second)
	id := mustAdd(t, bs, "", "https://example.com")
	after := time.Now()

	got, err := bs.GetByID(ctx, id)
	require.NoError(t, err)
	stamp, err := time.ParseInLocation(store.DateAddedLayout, got.DateAdded, time.Local)
	require.NoError(t, err)
	assert.False(t, stamp.Before(before))
	assert.False(t, stamp.After(after))
}
