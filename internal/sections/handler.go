// AngelaMos | 2026
// handler.go

package sections

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/litoralverde/training-api/internal/core"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes exposes the catalog publicly; the list is static and
// carries nothing user-specific.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/sections", h.ListSections)
}

func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	core.OK(w, Catalog)
}
