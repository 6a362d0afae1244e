package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/diskusi-dev/diskusi/internal/handler"
	"github.com/diskusi-dev/diskusi/internal/middleware/metrics"
	"github.com/diskusi-dev/diskusi/internal/setup"
)

// New creates and configures the router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(metrics.Middleware)

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready(deps.Storage))
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Post("/users", h.Register)

	r.Route("/authentications", func(r chi.Router) {
		r.Post("/", h.Login)
		r.Put("/", h.RefreshAuthentication)
		r.Delete("/", h.Logout)
	})

	r.Route("/threads", func(r chi.Router) {
		r.With(needAuth).Post("/", h.CreateThread)
		r.Get("/{threadId}", h.GetThread)

		r.Route("/{threadId}/comments", func(r chi.Router) {
			r.Use(needAuth)
			r.Post("/", h.CreateComment)
			r.Delete("/{commentId}", h.DeleteComment)
			r.Put("/{commentId}/likes", h.ToggleLike)

			r.Route("/{commentId}/replies", func(r chi.Router) {
				r.Post("/", h.CreateReply)
				r.Delete("/{replyId}", h.DeleteReply)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "404 page not found", http.StatusNotFound)
	})

	return r
}
