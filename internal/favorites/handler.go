// AngelaMos | 2026
// handler.go

package favorites

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/litoralverde/training-api/internal/core"
	"github.com/litoralverde/training-api/internal/middleware"
)

type ToggleFavoriteRequest struct {
	SectionID string `json:"section_id" validate:"required"`
}

type ToggleFavoriteResponse struct {
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
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
	r.Route("/favorites", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.ListFavorites)
		r.Post("/toggle", h.ToggleFavorite)
	})
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	result, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, result)
}

func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	var req ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	favorited, err := h.service.Toggle(r.Context(), userID, req.SectionID)
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			core.BadRequest(w, "Seção desconhecida")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	message := "Removido dos favoritos"
	if favorited {
		message = "Adicionado aos favoritos"
	}

	core.OK(w, ToggleFavoriteResponse{
		Favorited: favorited,
		Message:   message,
	})
}
