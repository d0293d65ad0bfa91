package vocab

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetDeck)
	r.Post("/review", h.Review)
	r.Get("/test", h.GetTestCards)
	return r
}
