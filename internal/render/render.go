// Package render turns bookmarks and tags into console text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joestump/bookie/internal/store"
)

// Renderer writes colored output to a single writer. Colors are dropped when
// the writer is not a terminal.
type Renderer struct {
	w io.Writer

	id, title, marker, url, tags, muted lipgloss.Style
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:      w,
		id:     r.NewStyle().Foreground(lipgloss.Color("6")),
		title:  r.NewStyle().Foreground(lipgloss.Color("2")),
		marker: r.NewStyle().Foreground(lipgloss.Color("1")),
		url:    r.NewStyle().Foreground(lipgloss.Color("3")),
		tags:   r.NewStyle().Foreground(lipgloss.Color("4")),
		muted:  r.NewStyle().Faint(true),
	}
}

// Bookmark writes one bookmark as a four-line block:
//
//	7. Title
//	   > https://example.com
//	   + notes
//	   # tag, tag
func (r *Renderer) Bookmark(b *store.Bookmark) error {
	_, err := fmt.Fprintf(r.w, "%s %s\n   %s %s\n   %s %s\n   %s %s\n",
		r.id.Render(fmt.Sprintf("%d.", b.ID)),
		r.title.Render(b.Title),
		r.marker.Render(">"), r.url.Render(b.URL),
		r.marker.Render("+"), b.Notes,
		r.marker.Render("#"), r.tags.Render(strings.Join(b.Tags, ", ")),
	)
	return err
}

// Bookmarks writes each bookmark followed by a blank line.
func (r *Renderer) Bookmarks(bookmarks []*store.Bookmark) error {
	if len(bookmarks) == 0 {
		_, err := fmt.Fprintln(r.w, r.muted.Render("no bookmarks"))
		return err
	}
	for _, b := range bookmarks {
		if err := r.Bookmark(b); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.w); err != nil {
			return err
		}
	}
	return nil
}

// Tags writes one "name (count)" line per tag.
func (r *Renderer) Tags(tags []*store.TagWithCount) error {
	if len(tags) == 0 {
		_, err := fmt.Fprintln(r.w, r.muted.Render("no tags"))
		return err
	}
	width := 0
	for _, t := range tags {
		width = max(width, lipgloss.Width(t.Name))
	}
	for _, t := range tags {
		pad := strings.Repeat(" ", width-lipgloss.Width(t.Name))
		if _, err := fmt.Fprintf(r.w, "%s%s %s\n", r.tags.Render(t.Name), pad, r.muted.Render(fmt.Sprintf("(%d)", t.Count))); err != nil {
			return err
		}
	}
	return nil
}

// Notice writes a single informational line.
func (r *Renderer) Notice(format string, args ...any) error {
	_, err := fmt.Fprintln(r.w, r.muted.Render(fmt.Sprintf(format, args...)))
	return err
}
