package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification types emitted to the notification topic
const (
	NotificationBookingStatusChanged = "booking_status_changed"
	NotificationPaymentStatusChanged = "payment_status_changed"
)

// ============================================================================
// KAFKA MESSAGE STRUCTURES
// ============================================================================

// BookingNotification is the message published to the notification topic
// when an admin changes a booking's status
type BookingNotification struct {
	Type           string    `json:"type"`
	RecipientEmail string    `json:"recipient_email"`
	BookingID      uuid.UUID `json:"booking_id"`
	Reference      string    `json:"reference"`
	CustomerName   string    `json:"customer_name"`
	TourTitle      string    `json:"tour_title"`
	OldStatus      string    `json:"old_status"`
	NewStatus      string    `json:"new_status"`
	Timestamp      time.Time `json:"timestamp"`
}
