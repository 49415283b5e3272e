package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wordvis/internal/handlers"
	"wordvis/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ExplorerService service.ExplorerService
	IndexHTML       string // Embedded HTML content
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Recoverer)

	// Request-scoped logger, then access log
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	// Add CORS middleware
	r.Use(CORS)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/vocabulary", handlers.NewVocabularyHandler(deps.ExplorerService))
		r.Method(http.MethodGet, "/overview", handlers.NewOverviewHandler(deps.ExplorerService))
		r.Method(http.MethodPost, "/table", handlers.NewTableHandler(deps.ExplorerService))
		r.Method(http.MethodPost, "/click", handlers.NewClickHandler(deps.ExplorerService))
		r.Method(http.MethodPost, "/chart", handlers.NewChartHandler(deps.ExplorerService))
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.ExplorerService))
	})

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
