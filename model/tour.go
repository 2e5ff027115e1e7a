package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// Tour represents the database model for tour packages
type Tour struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description  string         `gorm:"type:text"`
	Category     string         `gorm:"type:varchar(50);not null;index"`
	Country      string         `gorm:"type:varchar(100);not null;index"`
	City         string         `gorm:"type:varchar(100)"`
	Price        float64        `gorm:"type:decimal(10,2);not null"`
	DurationDays int            `gorm:"not null"`
	MaxGroupSize int            `gorm:"not null;default:20"`
	Featured     bool           `gorm:"not null;default:false;index"`
	Images       pq.StringArray `gorm:"type:text[]"`
	Highlights   pq.StringArray `gorm:"type:text[]"`
	Rating       float64        `gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews int            `gorm:"not null;default:0"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time
}

// TableName sets the table name for GORM
func (Tour) TableName() string {
	return "tours"
}

// ============================================================================
// REPOSITORY DATA TRANSFER OBJECTS (Internal - no JSON tags)
// ============================================================================

// TourFilter represents filtering and sorting options for tour listings
type TourFilter struct {
	Category string
	Country  string
	MinPrice float64
	MaxPrice float64
	SortBy   string
}

// Recognized sort modes for tour listings
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// CreateTourRequest represents the data needed to create a tour
type CreateTourRequest struct {
	Title        string
	Slug         string
	Description  string
	Category     string
	Country      string
	City         string
	Price        float64
	DurationDays int
	MaxGroupSize int
	Featured     bool
	Images       []string
	Highlights   []string
}

// UpdateTourRequest represents a partial tour update
type UpdateTourRequest struct {
	TourID       uuid.UUID
	Title        *string
	Description  *string
	Category     *string
	Country      *string
	City         *string
	Price        *float64
	DurationDays *int
	MaxGroupSize *int
	Featured     *bool
	Images       []string
	Highlights   []string
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// CreateTourAPIRequest is the admin API request to create a tour
type CreateTourAPIRequest struct {
	Title        string   `json:"title" binding:"required"`
	Slug         string   `json:"slug" binding:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" binding:"required"`
	Country      string   `json:"country" binding:"required"`
	City         string   `json:"city"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	DurationDays int      `json:"duration_days" binding:"required,gt=0"`
	MaxGroupSize int      `json:"max_group_size"`
	Featured     bool     `json:"featured"`
	Images       []string `json:"images"`
	Highlights   []string `json:"highlights"`
}

// UpdateTourAPIRequest is the admin API request to update a tour
type UpdateTourAPIRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Country      *string  `json:"country,omitempty"`
	City         *string  `json:"city,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	DurationDays *int     `json:"duration_days,omitempty"`
	MaxGroupSize *int     `json:"max_group_size,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
	Images       []string `json:"images,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// TourResponse represents a tour in API responses
type TourResponse struct {
	TourID       uuid.UUID `json:"tour_id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Country      string    `json:"country"`
	City         string    `json:"city"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	MaxGroupSize int       `json:"max_group_size"`
	Featured     bool      `json:"featured"`
	Images       []string  `json:"images"`
	Highlights   []string  `json:"highlights"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	CreatedAt    time.Time `json:"created_at"`
}

// TourListResponse represents a filtered tour listing. Cached indicates
// whether the response was served from the query cache.
type TourListResponse struct {
	Tours  []TourResponse `json:"tours"`
	Total  int            `json:"total"`
	Cached bool           `json:"cached"`
}

// TourDetailResponse wraps a single tour lookup with its cache marker
type TourDetailResponse struct {
	Tour   TourResponse `json:"tour"`
	Cached bool         `json:"cached"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToTourResponse converts a Tour entity to an API response
func (t *Tour) ToTourResponse() TourResponse {
	return TourResponse{
		TourID:       t.ID,
		Title:        t.Title,
		Slug:         t.Slug,
		Description:  t.Description,
		Category:     t.Category,
		Country:      t.Country,
		City:         t.City,
		Price:        t.Price,
		DurationDays: t.DurationDays,
		MaxGroupSize: t.MaxGroupSize,
		Featured:     t.Featured,
		Images:       t.Images,
		Highlights:   t.Highlights,
		Rating:       t.Rating,
		TotalReviews: t.TotalReviews,
		CreatedAt:    t.CreatedAt,
	}
}

// ToCreateTourRequest converts the API request to the repository DTO
func (r *CreateTourAPIRequest) ToCreateTourRequest() CreateTourRequest {
	return CreateTourRequest{
		Title:        r.Title,
		Slug:         r.Slug,
		Description:  r.Description,
		Category:     r.Category,
		Country:      r.Country,
		City:         r.City,
		Price:        r.Price,
		DurationDays: r.DurationDays,
		MaxGroupSize: r.MaxGroupSize,
		Featured:     r.Featured,
		Images:       r.Images,
		Highlights:   r.Highlights,
	}
}
