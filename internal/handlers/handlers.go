package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"alexjohnson.dev/internal/config"
	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/middleware"
	"alexjohnson.dev/internal/services"
	"alexjohnson.dev/internal/static"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, registry *content.Registry) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	jobService := services.NewJobService(registry)
	projectService := services.NewProjectService(registry)

	// Initialize handlers
	pageHandler := NewPageHandler(jobService, projectService, registry.Profile(), cfg.SiteURL, time.Now)
	jobHandler := NewJobHandler(jobService)
	projectHandler := NewProjectHandler(projectService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/jobs", jobHandler.ListJobs)
		r.Get("/jobs/{slug}", jobHandler.GetJob)

		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		r.Get("/parallax", GetParallax)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/jobs", pageHandler.ListJobs)
	r.Get("/jobs/{slug}", pageHandler.GetJob)
	r.Get("/projects", pageHandler.ListProjects)
	r.Get("/projects/{slug}", pageHandler.GetProject)
	r.Post("/theme", SetTheme)

	// Static files
	assets := static.FS()
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(assets)))
	r.Get("/placeholder.svg", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, assets, "placeholder.svg")
	})

	r.NotFound(pageHandler.NotFound)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode json response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
