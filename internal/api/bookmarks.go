package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/bookie/internal/metrics"
	"github.com/joestump/bookie/internal/store"
)

// bookmarksAPIHandler provides REST handlers for bookmark endpoints.
type bookmarksAPIHandler struct {
	bookmarks store.BookmarkStoreIface
	log       *slog.Logger
}

// registerBookmarkRoutes registers bookmark and search routes on r.
func registerBookmarkRoutes(r chi.Router, bookmarks store.BookmarkStoreIface, log *slog.Logger) {
	h := &bookmarksAPIHandler{bookmarks: bookmarks, log: log}
	r.Get("/bookmarks", h.List)
	r.Get("/bookmarks/{id}", h.Get)
	r.Get("/search", h.Search)
}

// List returns every bookmark in id order.
// GET /api/v1/bookmarks
func (h *bookmarksAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.bookmarks.ListAll(r.Context())
	if err != nil {
		h.internalError(w, "list bookmarks", err)
		return
	}
	metrics.BookmarksTotal.Set(float64(len(bookmarks)))
	writeJSON(w, http.StatusOK, toBookmarkList(bookmarks))
}

// Get returns one bookmark.
// GET /api/v1/bookmarks/{id}
func (h *bookmarksAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer", "bad_request")
		return
	}

	b, err := h.bookmarks.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "bookmark not found", "not_found")
		return
	}
	if err != nil {
		h.internalError(w, "get bookmark", err)
		return
	}
	writeJSON(w, http.StatusOK, toBookmarkResponse(b))
}

// Search filters bookmarks by tag substrings (?tag=a&tag=b) or by free-text
// substrings (?q=a&q=b). Exactly one of the two modes must be used.
// GET /api/v1/search
func (h *bookmarksAPIHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	tags, terms := query["tag"], query["q"]
	if len(tags) > 0 && len(terms) > 0 {
		writeError(w, http.StatusBadRequest, "use either tag or q, not both", "bad_request")
		return
	}

	var (
		bookmarks []*store.Bookmark
		err       error
		mode      string
	)
	if len(tags) > 0 {
		mode = "tag"
		bookmarks, err = h.bookmarks.SearchByTags(r.Context(), tags)
	} else {
		mode = "text"
		bookmarks, err = h.bookmarks.SearchByText(r.Context(), terms)
	}
	if errors.Is(err, store.ErrNoSearchTerms) {
		writeError(w, http.StatusBadRequest, err.Error(), "no_search_terms")
		return
	}
	if err != nil {
		h.internalError(w, "search bookmarks", err)
		return
	}

	metrics.SearchesTotal.WithLabelValues(mode).Inc()
	writeJSON(w, http.StatusOK, toBookmarkList(bookmarks))
}

func (h *bookmarksAPIHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
}
