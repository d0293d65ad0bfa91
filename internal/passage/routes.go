package passage

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListPassages)
	r.Post("/", h.CreatePassage)
	r.Get("/{id}", h.GetPassage)
	r.Delete("/{id}", h.DeletePassage)
	return r
}
