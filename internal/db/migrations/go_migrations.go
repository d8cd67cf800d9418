// Package migrations contains dialect-aware Go database migrations. The
// bookmark schema differs by driver in its key and text column types, so it is
// expressed in Go rather than as a single SQL file.
package migrations

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}
