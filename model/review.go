package model

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// Review represents the database model for tour reviews. Only approved
// reviews count toward the owning tour's aggregate rating.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TourID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Customer   Customer  `gorm:"foreignKey:CustomerID"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	IsApproved bool      `gorm:"not null;default:false;index"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time
}

// TableName sets the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// ============================================================================
// REPOSITORY DATA TRANSFER OBJECTS (Internal - no JSON tags)
// ============================================================================

// CreateReviewRequest represents the data needed to create a review
type CreateReviewRequest struct {
	TourID     uuid.UUID
	CustomerID uuid.UUID
	Rating     int
	Comment    string
}

// ReviewFilter represents filtering options for admin review queries
type ReviewFilter struct {
	TourID   *uuid.UUID
	Approved *bool
	Limit    int
	Offset   int
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// SubmitReviewRequest is the public API request to submit a review
type SubmitReviewRequest struct {
	TourID     uuid.UUID `json:"tour_id" binding:"required"`
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ReviewID     uuid.UUID `json:"review_id"`
	TourID       uuid.UUID `json:"tour_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewListResponse represents a page of reviews
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToReviewResponse converts a Review entity to an API response
func (r *Review) ToReviewResponse() ReviewResponse {
	return ReviewResponse{
		ReviewID:     r.ID,
		TourID:       r.TourID,
		CustomerName: r.Customer.Name,
		Rating:       r.Rating,
		Comment:      r.Comment,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt,
	}
}
