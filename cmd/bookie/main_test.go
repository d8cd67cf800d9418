package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/bookie/internal/db"
)

// bookie runs the CLI against the database at dsn, feeding stdin, and
// returns what it wrote to stdout.
func bookie(t *testing.T, dsn, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--db-driver", "sqlite3", "--db-dsn", dsn, "--log-level", "error"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func tempDSN(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "bookie.db")
}

func TestAddThenList(t *testing.T) {
	dsn := tempDSN(t)

	out, err := bookie(t, dsn, "", "add", "https://go.dev", "--title", "Go", "-n", "home page", "-t", "lang", "-t", "google")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Go")
	assert.Contains(t, out, "> https://go.dev")
	assert.Contains(t, out, "+ home page")
	assert.Contains(t, out, "# lang, google")

	out, err = bookie(t, dsn, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Go")

	// Bare invocation lists too.
	bare, err := bookie(t, dsn, "")
	require.NoError(t, err)
	assert.Equal(t, out, bare)
}

func TestAddTagWithComma(t *testing.T) {
	out, err := bookie(t, tempDSN(t), "", "add", "https://go.dev", "-t", "go,lang", "-t", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "# go,lang, docs")
}

func TestMigrationFailureAborts(t *testing.T) {
	dsn := tempDSN(t)

	conn, err := db.New("sqlite3", dsn)
	require.NoError(t, err)
	_, err = conn.Exec(`CREATE VIEW tags_to_bookmarks AS SELECT 1 AS id, 1 AS bookmark_id, 1 AS tag_id`)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	for _, args := range [][]string{{"list"}, {"add", "https://go.dev"}, {"migrate"}} {
		out, err := bookie(t, dsn, "", args...)
		require.Error(t, err, "bookie %v", args)
		assert.Contains(t, err.Error(), "run migrations")
		assert.Empty(t, out)
	}
}

func TestAddDuplicateIsNotAnError(t *testing.T) {
	dsn := tempDSN(t)

	_, err := bookie(t, dsn, "", "add", "https://go.dev", "--title", "Go")
	require.NoError(t, err)

	out, err := bookie(t, dsn, "", "add", "https://go.dev", "--title", "Go again")
	require.NoError(t, err)
	assert.Contains(t, out, "already bookmarked: https://go.dev")

	out, err = bookie(t, dsn, "", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Go again")
}

func TestAddEmptyURLFails(t *testing.T) {
	_, err := bookie(t, tempDSN(t), "", "add", "  ")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	dsn := tempDSN(t)
	_, err := bookie(t, dsn, "", "add", "https://go.dev", "--title", "Go")
	require.NoError(t, err)

	t.Run("declined", func(t *testing.T) {
		out, err := bookie(t, dsn, "n\n", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "1. Go")
		assert.Contains(t, out, "[y/N]")
		assert.Contains(t, out, "kept bookmark 1")
	})

	t.Run("no input keeps it", func(t *testing.T) {
		out, err := bookie(t, dsn, "", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "kept bookmark 1")
	})

	t.Run("confirmed", func(t *testing.T) {
		out, err := bookie(t, dsn, "y\n", "delete", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "deleted bookmark 1")

		out, err = bookie(t, dsn, "", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "no bookmarks")
	})

	t.Run("absent id", func(t *testing.T) {
		out, err := bookie(t, dsn, "", "delete", "99")
		require.NoError(t, err)
		assert.Contains(t, out, "no bookmark with id 99")
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := bookie(t, dsn, "", "delete", "abc")
		require.Error(t, err)
	})
}

func TestDeleteYesSkipsPrompt(t *testing.T) {
	dsn := tempDSN(t)
	_, err := bookie(t, dsn, "", "add", "https://go.dev")
	require.NoError(t, err)

	out, err := bookie(t, dsn, "", "delete", "--yes", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	assert.Contains(t, out, "deleted bookmark 1")
}

func TestSearch(t *testing.T) {
	dsn := tempDSN(t)
	for _, args := range [][]string{
		{"add", "https://go.dev", "--title", "Go", "-t", "golang"},
		{"add", "https://www.rust-lang.org", "--title", "Rust", "-t", "rust"},
	} {
		_, err := bookie(t, dsn, "", args...)
		require.NoError(t, err)
	}

	out, err := bookie(t, dsn, "", "search", "--tag", "go")
	require.NoError(t, err)
	assert.Contains(t, out, "Go")
	assert.NotContains(t, out, "Rust")

	out, err = bookie(t, dsn, "", "search", "rust-lang")
	require.NoError(t, err)
	assert.Contains(t, out, "Rust")
	assert.NotContains(t, out, "go.dev")

	_, err = bookie(t, dsn, "", "search")
	require.Error(t, err)

	_, err = bookie(t, dsn, "", "search", "--tag", "go", "rust")
	require.Error(t, err)
}

func TestTags(t *testing.T) {
	dsn := tempDSN(t)
	_, err := bookie(t, dsn, "", "add", "https://go.dev", "-t", "lang")
	require.NoError(t, err)
	_, err = bookie(t, dsn, "", "add", "https://www.rust-lang.org", "-t", "lang", "-t", "rust")
	require.NoError(t, err)

	out, err := bookie(t, dsn, "", "tags")
	require.NoError(t, err)
	assert.Regexp(t, `lang\s+\(2\)`, out)
	assert.Regexp(t, `rust\s+\(1\)`, out)
}

func TestMigrateReportsVersion(t *testing.T) {
	out, err := bookie(t, tempDSN(t), "", "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "schema at version 1")
}

func TestUpdateNotImplemented(t *testing.T) {
	_, err := bookie(t, tempDSN(t), "", "update")
	require.ErrorIs(t, err, errNotImplemented)
}

func TestVersion(t *testing.T) {
	out, err := bookie(t, tempDSN(t), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bookie dev"))
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{
		"y\n":   true,
		"YES\n": true,
		" y \n": true,
		"n\n":   false,
		"\n":    false,
		"":      false,
		"yep\n": false,
		"y":     true,
	} {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(input), &out, "Sure?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
		assert.Equal(t, "Sure? [y/N] ", out.String())
	}
}
