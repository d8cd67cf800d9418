package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joestump/bookie/internal/render"
	"github.com/joestump/bookie/internal/store"
)

func TestRenderer_Bookmark(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	err := r.Bookmark(&store.Bookmark{
		ID:    7,
		Title: "Go",
		URL:   "https://go.dev",
		Notes: "home",
		Tags:  []string{"golang", "docs"},
	})
	require.NoError(t, err)

	want := "7. Go\n   > https://go.dev\n   + home\n   # golang, docs\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderer_Bookmarks(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	require.NoError(t, r.Bookmarks(nil))
	assert.Equal(t, "no bookmarks\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Bookmarks([]*store.Bookmark{{ID: 1, URL: "a"}, {ID: 2, URL: "b"}}))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n\n")))
}

func TestRenderer_Tags(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)

	err := r.Tags([]*store.TagWithCount{
		{Tag: store.Tag{ID: 1, Name: "go"}, Count: 2},
		{Tag: store.Tag{ID: 2, Name: "music"}, Count: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, "go    (2)\nmusic (0)\n", buf.String())
}
