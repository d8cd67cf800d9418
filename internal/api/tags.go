package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/bookie/internal/store"
)

// tagsAPIHandler provides REST handlers for tag endpoints.
type tagsAPIHandler struct {
	tags store.TagStoreIface
	log  *slog.Logger
}

// registerTagRoutes registers tag routes on r.
func registerTagRoutes(r chi.Router, tags store.TagStoreIface, log *slog.Logger) {
	h := &tagsAPIHandler{tags: tags, log: log}
	r.Get("/tags", h.List)
}

// List returns all tags with their bookmark counts, orphans included.
// GET /api/v1/tags
func (h *tagsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	tagsWithCounts, err := h.tags.ListWithCounts(r.Context())
	if err != nil {
		h.log.Error("list tags failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", "internal_error")
		return
	}

	resp := &TagListResponse{Tags: make([]*TagResponse, 0, len(tagsWithCounts))}
	for _, t := range tagsWithCounts {
		resp.Tags = append(resp.Tags, &TagResponse{Name: t.Name, BookmarkCount: t.Count})
	}
	writeJSON(w, http.StatusOK, resp)
}
