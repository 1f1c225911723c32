package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio.dev/internal/content"
	"folio.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.GetViews())
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetReferral handles GET /api/referral
func (h *ProjectHandler) GetReferral(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, content.Referral())
}
