package aigen

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/passages", h.GeneratePassage)
	r.Post("/import", h.ImportPDF)
	return r
}
