// AngelaMos | 2026
// handler.go

package notes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/middleware"
)

type CreateNoteRequest struct {
	SectionID string `json:"section_id" validate:"required"`
	Content   string `json:"content"    validate:"required,max=10000"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

type DeleteNoteResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/notes", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListNotes)
		r.Post("/", h.CreateNote)
		r.Put("/{noteID}", h.UpdateNote)
		r.Delete("/{noteID}", h.DeleteNote)
	})
}

func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	sectionID := r.URL.Query().Get("section_id")

	result, err := h.service.ListForUser(r.Context(), userID, sectionID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	note, err := h.service.Create(r.Context(), userID, req.SectionID, req.Content)
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			core.BadRequest(w, "Seção desconhecida")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, note)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	noteID := chi.URLParam(r, "noteID")

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	note, err := h.service.Update(r.Context(), noteID, userID, req.Content)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Nota não encontrada")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	noteID := chi.URLParam(r, "noteID")

	if err := h.service.Delete(r.Context(), noteID, userID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "Nota não encontrada")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DeleteNoteResponse{Message: "Nota deletada com sucesso"})
}
