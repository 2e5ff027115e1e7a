package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// CreateReview creates a new unapproved review
func (r *PostgresRepository) CreateReview(req model.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		TourID:     req.TourID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsApproved: false,
	}

	if err := r.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// GetReviewByID retrieves a review by its ID
func (r *PostgresRepository) GetReviewByID(reviewID uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("Customer").Where("id = ?", reviewID).First(&review).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &review, nil
}

// ListReviews retrieves reviews matching the filter newest-first
func (r *PostgresRepository) ListReviews(filter model.ReviewFilter) ([]model.Review, int, error) {
	var reviews []model.Review
	var total int64

	query := r.db.Model(&model.Review{})

	if filter.TourID != nil {
		query = query.Where("tour_id = ?", *filter.TourID)
	}
	if filter.Approved != nil {
		query = query.Where("is_approved = ?", *filter.Approved)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	err := query.Preload("Customer").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, int(total), nil
}

// SetReviewApproval toggles the approval gate on a review
func (r *PostgresRepository) SetReviewApproval(reviewID uuid.UUID, approved bool) error {
	result := r.db.Model(&model.Review{}).Where("id = ?", reviewID).Updates(map[string]interface{}{
		"is_approved": approved,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to set review approval: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteReview removes a review record
func (r *PostgresRepository) DeleteReview(reviewID uuid.UUID) error {
	result := r.db.Where("id = ?", reviewID).Delete(&model.Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListApprovedReviews retrieves the reviews that count toward the tour's
// aggregate rating
func (r *PostgresRepository) ListApprovedReviews(tourID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("tour_id = ? AND is_approved = ?", tourID, true).Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved reviews: %w", err)
	}

	return reviews, nil
}
