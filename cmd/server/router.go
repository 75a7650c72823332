package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/phrazzld/typeflow-api/internal/api"
	apiMiddleware "github.com/phrazzld/typeflow-api/internal/api/middleware"
	"github.com/phrazzld/typeflow-api/internal/web"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	))

	// Practice page
	r.Get("/", app.pageHandler.Index)
	r.Handle("/static/*", web.StaticHandler())

	// Sentence generation
	r.Post("/generate", app.generateHandler.Generate)

	// Operations
	r.Get("/health", api.Health)
	r.Handle("/metrics", app.metrics.Handler())

	return r
}
