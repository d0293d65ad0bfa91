package passage

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/config"
)

type Handler struct {
	service PassageService
}

func NewHandler(s PassageService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreatePassage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreatePassageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for create passage")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "title and body are required", http.StatusBadRequest)
		return
	}

	p, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create passage")
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	config.JSON(w, http.StatusCreated, p)
}

func (h *Handler) ListPassages(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	filter := ListFilter{
		Topic:      r.URL.Query().Get("topic"),
		Difficulty: Difficulty(r.URL.Query().Get("difficulty")),
	}

	summaries, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list passages")
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) GetPassage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "passage id required", http.StatusBadRequest)
		return
	}

	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			log.WithError(err).Error("Failed to load passage")
		}
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) DeletePassage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "passage id required", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete passage")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "passage deleted successfully",
	})
}
