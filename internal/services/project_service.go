package services

import (
	"fmt"

	"folio.dev/internal/content"
	"folio.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService over a fixed project list
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// GetViews returns all projects with their slugs
func (s *ProjectService) GetViews() []models.ProjectView {
	views := make([]models.ProjectView, 0, len(s.projects))
	for _, p := range s.projects {
		views = append(views, models.ProjectView{Project: p, Slug: content.Slug(p.Title)})
	}
	return views
}

// GetBySlug returns the first project whose title slugifies to slug
func (s *ProjectService) GetBySlug(slug string) (*models.ProjectView, error) {
	for _, p := range s.projects {
		if content.Slug(p.Title) == slug {
			return &models.ProjectView{Project: p, Slug: slug}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrProjectNotFound, slug)
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.projects)
}
