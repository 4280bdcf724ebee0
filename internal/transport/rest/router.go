package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/vocabulary-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Word      *WordHandler
	Chapter   *ChapterHandler
	WordProps *WordPropsHandler
	Learning  *LearningHandler
	Health    *HealthHandler
}

// NewRouter mounts the API under /api and the health checks at the root.
// authLimit throttles the credential endpoints; loaders installs the
// per-request DataLoaders used when rendering embedded words. global wraps
// every route, outermost first.
func NewRouter(h Handlers, authLimit, loaders middleware.Middleware, global ...middleware.Middleware) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Chain(global...))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(loaders)

		r.Group(func(r chi.Router) {
			r.Use(authLimit)
			r.Post("/register", h.Auth.Register)
			r.Post("/token", h.Auth.Token)
			r.Post("/token/refresh", h.Auth.Refresh)
		})
		r.With(middleware.RequireUser).Post("/logout", h.Auth.Logout)

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", h.User.List)
			r.Get("/me", h.User.Me)
			r.Get("/{id}", h.User.Get)
		})

		r.Route("/words", func(r chi.Router) {
			r.Get("/", h.Word.List)
			r.Get("/{id}", h.Word.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/", h.Word.Create)
				r.Put("/{id}", h.Word.Update)
				r.Delete("/{id}", h.Word.Delete)
			})
		})

		r.Route("/chapters", func(r chi.Router) {
			r.Get("/", h.Chapter.List)
			r.Get("/{id}", h.Chapter.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireUser)
				r.Post("/", h.Chapter.Create)
				r.Post("/import", h.Chapter.Import)
				r.Put("/{id}", h.Chapter.Update)
				r.Delete("/{id}", h.Chapter.Delete)
			})
		})

		r.Route("/wordproperties", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", h.WordProps.List)
			r.Post("/", h.WordProps.Create)
			r.Get("/{id}", h.WordProps.Get)
			r.Put("/{id}", h.WordProps.Update)
			r.Delete("/{id}", h.WordProps.Delete)
		})

		r.Route("/learningdata", func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/", h.Learning.List)
			r.Post("/", h.Learning.Create)
			r.Get("/{id}", h.Learning.Get)
			r.Put("/{id}", h.Learning.Update)
			r.Delete("/{id}", h.Learning.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Post("/words/import", h.Word.Import)
			r.Put("/users/{id}/role", h.User.SetRole)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
