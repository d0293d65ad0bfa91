package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/ieltslab/internal/aigen"
	"github.com/saulo-duarte/ieltslab/internal/auth"
	"github.com/saulo-duarte/ieltslab/internal/passage"
	"github.com/saulo-duarte/ieltslab/internal/practice"
	"github.com/saulo-duarte/ieltslab/internal/user"
	"github.com/saulo-duarte/ieltslab/internal/vocab"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	PassageHandler  *passage.Handler
	PracticeHandler *practice.Handler
	AIGenHandler    *aigen.Handler
	VocabHandler    *vocab.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	// The session page owns its own auth policy: an unauthenticated GET
	// redirects to the library instead of rejecting, so it stays outside
	// the authenticated group.
	r.Get("/passages/{passageID}/session", cfg.PracticeHandler.GetSession)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/passages", passage.Routes(cfg.PassageHandler))
		r.Mount("/vocab", vocab.Routes(cfg.VocabHandler))
		r.Mount("/ai", aigen.Routes(cfg.AIGenHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))

		r.Post("/passages/{passageID}/session", cfg.PracticeHandler.PostSession)
	})
	return r
}
