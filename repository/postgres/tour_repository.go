package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// CreateTour creates a new tour record
func (r *PostgresRepository) CreateTour(req model.CreateTourRequest) (*model.Tour, error) {
	tour := &model.Tour{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Category:     req.Category,
		Country:      req.Country,
		City:         req.City,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		MaxGroupSize: req.MaxGroupSize,
		Featured:     req.Featured,
		Images:       req.Images,
		Highlights:   req.Highlights,
	}

	if err := r.db.Create(tour).Error; err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	return tour, nil
}

// UpdateTour applies a partial update and returns the fresh record
func (r *PostgresRepository) UpdateTour(req model.UpdateTourRequest) (*model.Tour, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.DurationDays != nil {
		updates["duration_days"] = *req.DurationDays
	}
	if req.MaxGroupSize != nil {
		updates["max_group_size"] = *req.MaxGroupSize
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	result := r.db.Model(&model.Tour{}).Where("id = ?", req.TourID).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update tour: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetTourByID(req.TourID)
}

// DeleteTour removes a tour record
func (r *PostgresRepository) DeleteTour(tourID uuid.UUID) error {
	result := r.db.Where("id = ?", tourID).Delete(&model.Tour{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tour: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// GetTourByID retrieves a tour by its ID
func (r *PostgresRepository) GetTourByID(tourID uuid.UUID) (*model.Tour, error) {
	var tour model.Tour
	err := r.db.Where("id = ?", tourID).First(&tour).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	return &tour, nil
}

// GetTourBySlug retrieves a tour by its slug
func (r *PostgresRepository) GetTourBySlug(slug string) (*model.Tour, error) {
	var tour model.Tour
	err := r.db.Where("slug = ?", slug).First(&tour).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tour by slug: %w", err)
	}

	return &tour, nil
}

// ListTours retrieves tours matching the filter
func (r *PostgresRepository) ListTours(filter model.TourFilter) ([]model.Tour, error) {
	var tours []model.Tour

	query := r.db.Model(&model.Tour{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Country != "" {
		query = query.Where("country = ?", filter.Country)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	switch filter.SortBy {
	case model.SortPriceAsc:
		query = query.Order("price ASC")
	case model.SortPriceDesc:
		query = query.Order("price DESC")
	case model.SortRating:
		query = query.Order("rating DESC")
	default:
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&tours).Error; err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	return tours, nil
}

// ListFeaturedTours retrieves the tours flagged for the landing page
func (r *PostgresRepository) ListFeaturedTours() ([]model.Tour, error) {
	var tours []model.Tour
	err := r.db.Where("featured = ?", true).Order("rating DESC").Find(&tours).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured tours: %w", err)
	}

	return tours, nil
}

// UpdateTourRating writes the recomputed aggregate fields in one update
func (r *PostgresRepository) UpdateTourRating(tourID uuid.UUID, rating float64, totalReviews int) error {
	result := r.db.Model(&model.Tour{}).Where("id = ?", tourID).Updates(map[string]interface{}{
		"rating":        rating,
		"total_reviews": totalReviews,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update tour rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
