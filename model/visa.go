package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// VisaPackage represents the database model for visa assistance packages
type VisaPackage struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string         `gorm:"type:varchar(255);not null"`
	Slug           string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Country        string         `gorm:"type:varchar(100);not null;index"`
	Type           string         `gorm:"type:varchar(50);not null;index"`
	Description    string         `gorm:"type:text"`
	Price          float64        `gorm:"type:decimal(10,2);not null"`
	ProcessingDays int            `gorm:"not null"`
	Requirements   pq.StringArray `gorm:"type:text[]"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time
}

// TableName sets the table name for GORM
func (VisaPackage) TableName() string {
	return "visa_packages"
}

// ============================================================================
// REPOSITORY DATA TRANSFER OBJECTS (Internal - no JSON tags)
// ============================================================================

// VisaFilter represents filtering options for visa package listings
type VisaFilter struct {
	Country string
	Type    string
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// VisaPackageResponse represents a visa package in API responses
type VisaPackageResponse struct {
	VisaPackageID  uuid.UUID `json:"visa_package_id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Country        string    `json:"country"`
	Type           string    `json:"type"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	ProcessingDays int       `json:"processing_days"`
	Requirements   []string  `json:"requirements"`
}

// VisaPackageListResponse represents a filtered visa package listing.
// Cached indicates whether the response was served from the query cache.
type VisaPackageListResponse struct {
	Packages []VisaPackageResponse `json:"packages"`
	Total    int                   `json:"total"`
	Cached   bool                  `json:"cached"`
}

// VisaPackageDetailResponse wraps a single visa package lookup with its
// cache marker
type VisaPackageDetailResponse struct {
	Package VisaPackageResponse `json:"package"`
	Cached  bool                `json:"cached"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToVisaPackageResponse converts a VisaPackage entity to an API response
func (v *VisaPackage) ToVisaPackageResponse() VisaPackageResponse {
	return VisaPackageResponse{
		VisaPackageID:  v.ID,
		Title:          v.Title,
		Slug:           v.Slug,
		Country:        v.Country,
		Type:           v.Type,
		Description:    v.Description,
		Price:          v.Price,
		ProcessingDays: v.ProcessingDays,
		Requirements:   v.Requirements,
	}
}
