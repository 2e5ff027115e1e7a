package model

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// AUDIT ACTION KINDS
// ============================================================================

const (
	AuditActionSetBookingStatus = "booking.set_status"
	AuditActionSetPaymentStatus = "booking.set_payment_status"
	AuditActionDeleteBooking    = "booking.delete"
	AuditActionApproveReview    = "review.approve"
	AuditActionRejectReview     = "review.reject"
	AuditActionDeleteReview     = "review.delete"
)

// ============================================================================
// DATABASE ENTITIES (Internal - GORM only, no JSON tags)
// ============================================================================

// AuditRecord is an append-only log entry describing a mutating admin
// action. Records are never updated or deleted.
type AuditRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"type:varchar(50);not null;index"`
	TargetID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Detail    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName sets the table name for GORM
func (AuditRecord) TableName() string {
	return "audit_records"
}

// ============================================================================
// REPOSITORY DATA TRANSFER OBJECTS (Internal - no JSON tags)
// ============================================================================

// AppendAuditRequest represents the data needed to append an audit record
type AppendAuditRequest struct {
	ActorID  uuid.UUID
	Action   string
	TargetID uuid.UUID
	Detail   string
}
