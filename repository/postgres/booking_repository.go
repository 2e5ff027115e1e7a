package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// GetBookingByID retrieves a booking with its customer and tour
func (r *PostgresRepository) GetBookingByID(bookingID uuid.UUID) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.Preload("Customer").Preload("Tour").Where("id = ?", bookingID).First(&booking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func bookingFilterQuery(db *gorm.DB, filter model.BookingFilter) *gorm.DB {
	query := db.Model(&model.Booking{})

	if filter.BookingStatus != "" {
		query = query.Where("booking_status = ?", filter.BookingStatus)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	return query
}

// ListBookings retrieves a filtered, paginated page of bookings newest-first
func (r *PostgresRepository) ListBookings(filter model.BookingFilter) ([]model.Booking, int, error) {
	var bookings []model.Booking
	var total int64

	query := bookingFilterQuery(r.db, filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	err := query.Preload("Customer").Preload("Tour").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&bookings).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, int(total), nil
}

// ExportBookings retrieves every booking matching the filter newest-first,
// with no pagination
func (r *PostgresRepository) ExportBookings(filter model.BookingFilter) ([]model.Booking, error) {
	var bookings []model.Booking

	err := bookingFilterQuery(r.db, filter).
		Preload("Customer").Preload("Tour").
		Order("created_at DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, fmt.Errorf("failed to export bookings: %w", err)
	}

	return bookings, nil
}

// UpdateBookingStatus updates the fulfillment status of a booking
func (r *PostgresRepository) UpdateBookingStatus(req model.UpdateBookingStatusRequest) error {
	result := r.db.Model(&model.Booking{}).Where("id = ?", req.BookingID).Updates(map[string]interface{}{
		"booking_status": req.BookingStatus,
		"updated_at":     time.Now(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdatePaymentStatus updates the payment status of a booking, optionally
// together with the paid amount and transaction reference
func (r *PostgresRepository) UpdatePaymentStatus(req model.UpdatePaymentStatusRequest) error {
	updates := map[string]interface{}{
		"payment_status": req.PaymentStatus,
		"updated_at":     time.Now(),
	}

	if req.PaidAmount != nil {
		updates["paid_amount"] = *req.PaidAmount
	}
	if req.TransactionID != nil {
		updates["transaction_id"] = *req.TransactionID
	}

	result := r.db.Model(&model.Booking{}).Where("id = ?", req.BookingID).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteBooking removes a booking record
func (r *PostgresRepository) DeleteBooking(bookingID uuid.UUID) error {
	result := r.db.Where("id = ?", bookingID).Delete(&model.Booking{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
