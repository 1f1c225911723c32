package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/middleware"
	"folio.dev/internal/models"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
	"folio.dev/internal/static"
)

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a message
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config) (http.Handler, error) {
	renderer, err := render.New(cfg.Site.PlaceholderImage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	projectService := services.NewProjectService(content.Projects())

	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(cfg.Site, projectService, renderer)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)

	// Pages
	r.Get("/", pageHandler.Projects)
	r.Get("/projects", pageHandler.Projects)
	r.Get("/partials/referral-card", pageHandler.ReferralCard)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/referral", projectHandler.GetReferral)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(static.FS()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondDomainError maps a service error onto an HTTP error response
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := mapError(err)
	respondError(w, status, code, message)
}

// mapError maps domain errors to HTTP status codes and error codes
func mapError(err error) (status int, code string, message string) {
	switch {
	case errors.Is(err, models.ErrProjectNotFound):
		return http.StatusNotFound, "PROJECT_NOT_FOUND", err.Error()
	default:
		slog.Error("unmapped error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
