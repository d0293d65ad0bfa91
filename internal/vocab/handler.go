package vocab

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/auth"
	"github.com/saulo-duarte/ieltslab/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var masteredOnly *bool
	if v := r.URL.Query().Get("mastered"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "mastered must be a boolean", http.StatusBadRequest)
			return
		}
		masteredOnly = &b
	}

	deck, err := h.service.Deck(r.Context(), claims.UserID, masteredOnly)
	if err != nil {
		log.WithError(err).Error("Failed to build vocabulary deck")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, deck)
}

func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto ReviewDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "word and answer are required", http.StatusBadRequest)
		return
	}

	result, err := h.service.Review(r.Context(), claims.UserID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to review word")
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) GetTestCards(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	cards, err := h.service.TestCards(r.Context(), claims.UserID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to build test cards")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, cards)
}
