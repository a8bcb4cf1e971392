package services

import (
	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/models"
)

// JobService handles job-related operations
type JobService struct {
	registry *content.Registry
}

// NewJobService creates a new JobService
func NewJobService(registry *content.Registry) *JobService {
	return &JobService{registry: registry}
}

// GetAll returns all jobs
func (s *JobService) GetAll() []models.Job {
	return s.registry.Jobs()
}

// GetBySlug resolves a job by slug
func (s *JobService) GetBySlug(slug string) Resolution[models.Job] {
	return Resolve(s.registry.Jobs(), slug)
}
