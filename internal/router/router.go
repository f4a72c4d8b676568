package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/inkwell-dev/inkwell/internal/middleware/metrics"
	"github.com/inkwell-dev/inkwell/internal/setup"
)

// New creates and configures the chi router with all routes. Mutating
// post/vote routes sit behind the bearer-token middleware; reads are public.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/", h.Index)
	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", h.Login)
	r.Post("/users", h.CreateUser)
	r.Get("/users/{userId}", h.GetUser)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Get("/{postId}", h.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Post("/", h.CreatePost)
			r.Put("/{postId}", h.UpdatePost)
			r.Delete("/{postId}", h.DeletePost)
		})
	})

	r.With(authMw.NeedAuth()).Post("/vote", h.Vote)

	return r
}
