package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sentencias-rag/internal/handlers"
	"sentencias-rag/internal/rag"
)

// ServiceName identifies this service in the health response.
const ServiceName = "sentencias-rag"

// Deps holds dependencies for the HTTP router.
type Deps struct {
	RAGEngine  rag.Engine
	Collection string
	ChatModel  string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	askHandler := handlers.NewAskHandler(deps.RAGEngine)
	healthHandler := handlers.NewHealthHandler(ServiceName, deps.Collection, deps.ChatModel)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Route("/v1", func(r chi.Router) {
			r.Method(http.MethodPost, "/ask", askHandler)
		})
	})

	return r
}
