package practice

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/auth"
	"github.com/saulo-duarte/ieltslab/internal/config"
)

type Handler struct {
	service PracticeService
}

func NewHandler(s PracticeService) *Handler {
	return &Handler{service: s}
}

// GetSession serves the practice page view model. Browser navigation lands
// here directly, so a missing passage or session sends the user back to the
// library instead of a bare error page.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.ClaimsFromRequest(r)
	if err != nil {
		http.Redirect(w, r, "/passages", http.StatusFound)
		return
	}

	passageID := chi.URLParam(r, "passageID")
	if passageID == "" {
		http.Redirect(w, r, "/passages", http.StatusFound)
		return
	}

	view, err := h.service.GetSession(r.Context(), claims.UserID, passageID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			http.Redirect(w, r, "/passages", http.StatusFound)
			return
		}
		log.WithError(err).Error("Failed to build session view")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, view)
}

// PostSession is the single write endpoint of the practice page, dispatching
// on the intent discriminator.
func (h *Handler) PostSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	passageID := chi.URLParam(r, "passageID")
	if passageID == "" {
		http.Error(w, "passage id required", http.StatusBadRequest)
		return
	}

	var dto SessionActionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for session action")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	switch dto.Intent {
	case IntentAddHighlight:
		highlight, err := h.service.AddHighlight(r.Context(), claims.UserID, passageID, dto)
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.WithError(err).Error("Failed to add highlight")
			}
			http.Error(w, err.Error(), apperr.Status(err))
			return
		}
		config.JSON(w, http.StatusCreated, highlight)

	case IntentSubmitAnswers:
		result, err := h.service.SubmitAnswers(r.Context(), claims.UserID, passageID, dto.Answers)
		if err != nil {
			if apperr.Status(err) == http.StatusInternalServerError {
				log.WithError(err).Error("Failed to submit answers")
			}
			http.Error(w, err.Error(), apperr.Status(err))
			return
		}
		config.JSON(w, http.StatusCreated, result)

	default:
		http.Error(w, "unknown intent", http.StatusBadRequest)
	}
}
