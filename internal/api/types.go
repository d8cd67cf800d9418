package api

import "github.com/joestump/bookie/internal/store"

// BookmarkResponse is the JSON shape of one bookmark.
type BookmarkResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Notes     string   `json:"notes"`
	DateAdded string   `json:"date_added"`
	Tags      []string `json:"tags"`
}

// BookmarkListResponse wraps a list of bookmarks.
type BookmarkListResponse struct {
	Bookmarks []*BookmarkResponse `json:"bookmarks"`
}

// TagResponse is the JSON shape of one tag.
type TagResponse struct {
	Name          string `json:"name"`
	BookmarkCount int    `json:"bookmark_count"`
}

// TagListResponse wraps a list of tags.
type TagListResponse struct {
	Tags []*TagResponse `json:"tags"`
}

func toBookmarkResponse(b *store.Bookmark) *BookmarkResponse {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return &BookmarkResponse{
		ID:        b.ID,
		Title:     b.Title,
		URL:       b.URL,
		Notes:     b.Notes,
		DateAdded: b.DateAdded,
		Tags:      tags,
	}
}

func toBookmarkList(bookmarks []*store.Bookmark) *BookmarkListResponse {
	resp := &BookmarkListResponse{Bookmarks: make([]*BookmarkResponse, 0, len(bookmarks))}
	for _, b := range bookmarks {
		resp.Bookmarks = append(resp.Bookmarks, toBookmarkResponse(b))
	}
	return resp
}
