// Package store is the storage and query layer of the bookmark catalogue.
//
// A store handle is owned by one caller at a time. Nothing in this package
// synchronizes concurrent writers beyond what the database itself provides.
package store

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a requested bookmark does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateURL is returned by Add when the url is already stored.
	// Nothing is written on this path.
	ErrDuplicateURL = errors.New("bookmark url already exists")

	// ErrEmptyURL is returned by Add when no url is supplied.
	ErrEmptyURL = errors.New("bookmark url must not be empty")

	// ErrNoSearchTerms is returned by the search operations before any query
	// is built when the pattern list holds no usable pattern.
	ErrNoSearchTerms = errors.New("no search terms supplied")
)

// BookmarkStoreIface exposes all bookmark data operations.
// Callers never query the DB directly; all access goes through this interface.
type BookmarkStoreIface interface {
	Add(ctx context.Context, nb NewBookmark) (int64, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Bookmark, error)
	ListAll(ctx context.Context) ([]*Bookmark, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	URLOf(ctx context.Context, id int64) (string, error)
	SearchByTags(ctx context.Context, patterns []string) ([]*Bookmark, error)
	SearchByText(ctx context.Context, patterns []string) ([]*Bookmark, error)
}

// TagStoreIface exposes tag operations.
type TagStoreIface interface {
	ListWithCounts(ctx context.Context) ([]*TagWithCount, error)
}

var (
	_ BookmarkStoreIface = (*BookmarkStore)(nil)
	_ TagStoreIface      = (*TagStore)(nil)
)

// isUniqueConstraintError checks whether err indicates a unique constraint violation.
// Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
