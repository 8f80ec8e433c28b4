package http

import (
	"net/http"

	"github.com/atinyakov/pledgevault/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the API.
// It applies JSON content-type enforcement and request logging, and mounts
// the auth, item and health endpoints under /api.
//
// Routes:
//
//	GET    /api/health          → healthHandler.Status
//	POST   /api/auth/register   → authHandler.Register
//	POST   /api/auth/login      → authHandler.Login
//	GET    /api/auth/me         → authHandler.Me      (bearer token)
//	POST   /api/items           → itemHandler.Create  (bearer token)
//	GET    /api/items           → itemHandler.List    (bearer token)
//	GET    /api/items/{id}      → itemHandler.Get     (bearer token)
//	PUT    /api/items/{id}      → itemHandler.Update  (bearer token)
//	DELETE /api/items/{id}      → itemHandler.Delete  (bearer token)
//
// BearerAuth is the single gate in front of /api/auth/me and every /api/items
// route; no item handler is reachable without a verified token.
func NewRouter(
	authHandler *AuthHandler,
	itemHandler *ItemHandler,
	healthHandler *HealthHandler,
	tokens middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Status)

		r.Route("/auth", func(r chi.Router) {
			// Public endpoints
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected group: requires valid bearer token
			r.Group(func(r chi.Router) {
				r.Use(middleware.BearerAuth(tokens))
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Use(middleware.BearerAuth(tokens))

			r.Post("/", itemHandler.Create)
			r.Get("/", itemHandler.List)
			r.Get("/{id}", itemHandler.Get)
			r.Put("/{id}", itemHandler.Update)
			r.Delete("/{id}", itemHandler.Delete)
		})
	})

	return r
}
