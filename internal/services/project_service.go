package services

import (
	"log/slog"

	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	registry *content.Registry
}

// NewProjectService creates a new ProjectService
func NewProjectService(registry *content.Registry) *ProjectService {
	return &ProjectService{registry: registry}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.registry.Projects()
}

// GetBySlug resolves a project by slug
func (s *ProjectService) GetBySlug(slug string) Resolution[models.Project] {
	return Resolve(s.registry.Projects(), slug)
}

// Featured returns the curated landing page projects in curated order.
// Slugs that no longer resolve are skipped.
func (s *ProjectService) Featured() []models.Project {
	projects := s.registry.Projects()
	slugs := s.registry.Profile().FeaturedSlugs

	featured := make([]models.Project, 0, len(slugs))
	for _, slug := range slugs {
		res := Resolve(projects, slug)
		if !res.Found() {
			slog.Warn("featured project not found", "slug", slug)
			continue
		}
		featured = append(featured, *res.Record)
	}
	return featured
}
