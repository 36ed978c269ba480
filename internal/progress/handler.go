// AngelaMos | 2026
// handler.go

package progress

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/middleware"
)

type UpdateProgressRequest struct {
	SectionID string `json:"section_id" validate:"required"`
	Completed bool   `json:"completed"`
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
	r.Route("/progress", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListProgress)
		r.Post("/", h.UpdateProgress)
	})
}

func (h *Handler) ListProgress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	records, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, records)
}

func (h *Handler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	record, err := h.service.Update(
		r.Context(),
		userID,
		req.SectionID,
		req.Completed,
	)
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			core.BadRequest(w, "Seção desconhecida")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, record)
}
