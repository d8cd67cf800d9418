package migrations

// Tables are created with IF NOT EXISTS so a store written before schema
// versioning existed is adopted as-is. Nullable notes/date_added columns in
// such stores are tolerated by the store's COALESCE reads.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookmarks, downCreateBookmarks)
}

func upCreateBookmarks(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range createBookmarksStmts() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create bookmark schema: %w", err)
		}
	}
	return nil
}

func downCreateBookmarks(ctx context.Context, tx *sql.Tx) error {
	for _, table := range []string{"tags_to_bookmarks", "tags", "bookmarks"} {
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+table); err != nil {
			return err
		}
	}
	return nil
}

func createBookmarksStmts() []string {
	switch dialect {
	case "postgres":
		return []string{
			`CREATE TABLE IF NOT EXISTS bookmarks (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL DEFAULT '',
    url        TEXT NOT NULL UNIQUE,
    notes      TEXT NOT NULL DEFAULT '',
    date_added TEXT NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS tags (
    id   BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
			`CREATE TABLE IF NOT EXISTS tags_to_bookmarks (
    id          BIGSERIAL PRIMARY KEY,
    bookmark_id BIGINT NOT NULL REFERENCES bookmarks(id) ON DELETE CASCADE,
    tag_id      BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS uix_bookmark_id_tag_id ON tags_to_bookmarks (bookmark_id, tag_id)`,
			`CREATE INDEX IF NOT EXISTS idx_tags_to_bookmarks_tag_id ON tags_to_bookmarks (tag_id)`,
		}
	case "mysql":
		// MySQL has no CREATE INDEX IF NOT EXISTS; keys are declared inline.
		// url is capped so its unique index fits InnoDB's 3072-byte key limit.
		return []string{
			`CREATE TABLE IF NOT EXISTS bookmarks (
    id         BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    title      TEXT NOT NULL,
    url        VARCHAR(768) NOT NULL,
    notes      TEXT NOT NULL,
    date_added VARCHAR(19) NOT NULL,
    UNIQUE KEY uix_bookmarks_url (url)
) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin`,
			`CREATE TABLE IF NOT EXISTS tags (
    id   BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    UNIQUE KEY uix_tags_name (name)
) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin`,
			`CREATE TABLE IF NOT EXISTS tags_to_bookmarks (
    id          BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
    bookmark_id BIGINT NOT NULL,
    tag_id      BIGINT NOT NULL,
    UNIQUE KEY uix_bookmark_id_tag_id (bookmark_id, tag_id),
    CONSTRAINT fk_tb_bookmark FOREIGN KEY (bookmark_id) REFERENCES bookmarks(id) ON DELETE CASCADE,
    CONSTRAINT fk_tb_tag FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin`,
		}
	default: // sqlite3
		return []string{
			`CREATE TABLE IF NOT EXISTS bookmarks (
    id         INTEGER PRIMARY KEY,
    title      TEXT NOT NULL DEFAULT '',
    url        TEXT NOT NULL UNIQUE,
    notes      TEXT NOT NULL DEFAULT '',
    date_added TEXT NOT NULL
)`,
			`CREATE TABLE IF NOT EXISTS tags (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
			`CREATE TABLE IF NOT EXISTS tags_to_bookmarks (
    id          INTEGER PRIMARY KEY,
    bookmark_id INTEGER NOT NULL,
    tag_id      INTEGER NOT NULL,
    FOREIGN KEY (bookmark_id) REFERENCES bookmarks(id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS uix_bookmark_id_tag_id ON tags_to_bookmarks (bookmark_id, tag_id)`,
			`CREATE INDEX IF NOT EXISTS idx_tags_to_bookmarks_tag_id ON tags_to_bookmarks (tag_id)`,
		}
	}
}
