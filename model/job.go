package model

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// JobPosting represents the database model for career postings
type JobPosting struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Location    string    `gorm:"type:varchar(100)"`
	Type        string    `gorm:"type:varchar(50)"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName sets the table name for GORM
func (JobPosting) TableName() string {
	return "job_postings"
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// JobPostingResponse represents a job posting in API responses
type JobPostingResponse struct {
	JobID       uuid.UUID `json:"job_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	PostedAt    time.Time `json:"posted_at"`
}

// JobPostingListResponse represents the active job postings
type JobPostingListResponse struct {
	Jobs  []JobPostingResponse `json:"jobs"`
	Total int                  `json:"total"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToJobPostingResponse converts a JobPosting entity to an API response
func (j *JobPosting) ToJobPostingResponse() JobPostingResponse {
	return JobPostingResponse{
		JobID:       j.ID,
		Title:       j.Title,
		Slug:        j.Slug,
		Location:    j.Location,
		Type:        j.Type,
		Description: j.Description,
		PostedAt:    j.CreatedAt,
	}
}
