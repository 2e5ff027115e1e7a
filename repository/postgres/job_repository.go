package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// ListJobPostings retrieves the active career postings newest-first
func (r *PostgresRepository) ListJobPostings() ([]model.JobPosting, error) {
	var jobs []model.JobPosting
	err := r.db.Where("active = ?", true).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	return jobs, nil
}

// GetJobPostingBySlug retrieves a job posting by its slug
func (r *PostgresRepository) GetJobPostingBySlug(slug string) (*model.JobPosting, error) {
	var job model.JobPosting
	err := r.db.Where("slug = ?", slug).First(&job).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	return &job, nil
}
