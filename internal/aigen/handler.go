package aigen

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/saulo-duarte/ieltslab/internal/apperr"
	"github.com/saulo-duarte/ieltslab/internal/auth"
	"github.com/saulo-duarte/ieltslab/internal/config"
	"github.com/saulo-duarte/ieltslab/internal/passage"
)

const maxUploadSize = 10 << 20 // 10 MiB

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GeneratePassage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(req); err != nil {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	p, err := h.service.GenerateFromTopic(r.Context(), claims.UserID, req)
	if err != nil {
		log.WithError(err).Error("Failed to generate passage")
		h.writeError(w, err, "could not generate a passage right now, please try again")
		return
	}

	config.JSON(w, http.StatusCreated, p)
}

func (h *Handler) ImportPDF(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "pdf file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded file")
		http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
		return
	}

	defaults := ImportDefaults{
		Title:      r.FormValue("title"),
		Topic:      r.FormValue("topic"),
		Difficulty: passage.Difficulty(r.FormValue("difficulty")),
	}

	p, err := h.service.ImportFromPDF(r.Context(), claims.UserID, header.Filename, data, defaults)
	if err != nil {
		log.WithError(err).Error("Failed to import PDF")
		h.writeError(w, err, "could not import the document, please try again")
		return
	}

	config.JSON(w, http.StatusCreated, p)
}

// writeError keeps upstream causes out of the response body; the user gets a
// short message, the log gets the cause.
func (h *Handler) writeError(w http.ResponseWriter, err error, upstreamMsg string) {
	status := apperr.Status(err)
	if errors.Is(err, apperr.ErrUpstream) {
		http.Error(w, upstreamMsg, status)
		return
	}
	if status == http.StatusInternalServerError {
		http.Error(w, "internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
