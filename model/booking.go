package model

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// STATUS ENUMERATIONS
// ============================================================================

// Booking fulfillment statuses
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
)

// Payment statuses
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusPartial   = "PARTIAL"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusRefunded  = "REFUNDED"
	PaymentStatusFailed    = "FAILED"
)

// ValidBookingStatus reports whether s is one of the recognized booking
// status tokens.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the recognized payment
// status tokens.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusCompleted, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// Booking represents the database model for tour bookings
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Reference     string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	CustomerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Customer      Customer  `gorm:"foreignKey:CustomerID"`
	TourID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Tour          Tour      `gorm:"foreignKey:TourID"`
	StartDate     time.Time `gorm:"not null"`
	Travelers     int       `gorm:"not null;default:1"`
	TotalPrice    float64   `gorm:"type:decimal(10,2);not null"`
	PaidAmount    float64   `gorm:"type:decimal(10,2);not null;default:0"`
	BookingStatus string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	TransactionID *string   `gorm:"type:varchar(100)"`
	SpecialNotes  *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP;index"`
	UpdatedAt     time.Time
}

// TableName sets the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}

// Customer represents the database model for customers
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Phone     string    `gorm:"type:varchar(30)"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName sets the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// ============================================================================
// REPOSITORY DATA TRANSFER OBJECTS (Internal - no JSON tags)
// ============================================================================

// UpdateBookingStatusRequest represents a booking status update
type UpdateBookingStatusRequest struct {
	BookingID     uuid.UUID
	BookingStatus string
}

// UpdatePaymentStatusRequest represents a payment status update
type UpdatePaymentStatusRequest struct {
	BookingID     uuid.UUID
	PaymentStatus string
	PaidAmount    *float64
	TransactionID *string
}

// BookingFilter represents filtering options for admin booking queries
type BookingFilter struct {
	BookingStatus string
	PaymentStatus string
	DateFrom      *time.Time
	DateTo        *time.Time
	Limit         int
	Offset        int
}

// BookingExportRow is the flat projection used for CSV export,
// ordered newest-first
type BookingExportRow struct {
	Reference     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	TourTitle     string
	Destination   string
	StartDate     time.Time
	Travelers     int
	TotalPrice    float64
	BookingStatus string
	PaymentStatus string
	CreatedAt     time.Time
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// SetBookingStatusRequest is the admin API request to change booking status
type SetBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetPaymentStatusRequest is the admin API request to change payment status
type SetPaymentStatusRequest struct {
	Status        string   `json:"status" binding:"required"`
	PaidAmount    *float64 `json:"paid_amount,omitempty"`
	TransactionID *string  `json:"transaction_id,omitempty"`
}

// BookingResponse represents a booking in admin API responses
type BookingResponse struct {
	BookingID     uuid.UUID `json:"booking_id"`
	Reference     string    `json:"reference"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	TourTitle     string    `json:"tour_title"`
	Destination   string    `json:"destination"`
	StartDate     time.Time `json:"start_date"`
	Travelers     int       `json:"travelers"`
	TotalPrice    float64   `json:"total_price"`
	PaidAmount    float64   `json:"paid_amount"`
	BookingStatus string    `json:"booking_status"`
	PaymentStatus string    `json:"payment_status"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingListResponse represents a filtered page of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ============================================================================
// CONVERSION METHODS
// ============================================================================

// ToBookingResponse converts a Booking entity to an admin API response
func (b *Booking) ToBookingResponse() BookingResponse {
	return BookingResponse{
		BookingID:     b.ID,
		Reference:     b.Reference,
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		TourTitle:     b.Tour.Title,
		Destination:   b.Tour.Country,
		StartDate:     b.StartDate,
		Travelers:     b.Travelers,
		TotalPrice:    b.TotalPrice,
		PaidAmount:    b.PaidAmount,
		BookingStatus: b.BookingStatus,
		PaymentStatus: b.PaymentStatus,
		TransactionID: b.TransactionID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToExportRow converts a Booking entity to a flat export row
func (b *Booking) ToExportRow() BookingExportRow {
	return BookingExportRow{
		Reference:     b.Reference,
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		CustomerPhone: b.Customer.Phone,
		TourTitle:     b.Tour.Title,
		Destination:   b.Tour.Country,
		StartDate:     b.StartDate,
		Travelers:     b.Travelers,
		TotalPrice:    b.TotalPrice,
		BookingStatus: b.BookingStatus,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}
