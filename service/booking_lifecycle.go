package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/notification"
	"github.com/roamio/travelagency/repository"
)

// Reachable target states per current state. CANCELLED and COMPLETED are
// terminal on the booking axis; REFUNDED and FAILED on the payment axis.
var bookingTransitions = map[string][]string{
	model.BookingStatusPending:   {model.BookingStatusConfirmed, model.BookingStatusCancelled},
	model.BookingStatusConfirmed: {model.BookingStatusCompleted, model.BookingStatusCancelled},
	model.BookingStatusCancelled: {},
	model.BookingStatusCompleted: {},
}

var paymentTransitions = map[string][]string{
	model.PaymentStatusPending:   {model.PaymentStatusPartial, model.PaymentStatusCompleted, model.PaymentStatusFailed},
	model.PaymentStatusPartial:   {model.PaymentStatusCompleted, model.PaymentStatusRefunded, model.PaymentStatusFailed},
	model.PaymentStatusCompleted: {model.PaymentStatusRefunded},
	model.PaymentStatusRefunded:  {},
	model.PaymentStatusFailed:    {},
}

func reachable(transitions map[string][]string, current, target string) bool {
	for _, t := range transitions[current] {
		if t == target {
			return true
		}
	}
	return false
}

// BookingLifecycle owns the two-axis status model of a booking. Every
// transition is validated before any write; the status update and its
// audit record commit in one transaction. Concurrent writers to the same
// booking race last-writer-wins and each produces its own audit record.
type BookingLifecycle struct {
	repo     repository.Repository
	notifier notification.Publisher
	logger   *zap.Logger

	// strict rejects targets unreachable from the current state
	strict bool
}

func NewBookingLifecycle(repo repository.Repository, notifier notification.Publisher, logger *zap.Logger, strict bool) *BookingLifecycle {
	return &BookingLifecycle{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		strict:   strict,
	}
}

type statusChangeDetail struct {
	Reference string `json:"reference"`
	OldStatus string `json:"old_status"`
	NewStatus string `json:"new_status"`
}

// SetBookingStatus transitions the fulfillment status of a booking.
func (s *BookingLifecycle) SetBookingStatus(ctx context.Context, actorID, bookingID uuid.UUID, target string) (*model.Booking, error) {
	if !model.ValidBookingStatus(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}

	booking, err := s.repo.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if s.strict && !reachable(bookingTransitions, booking.BookingStatus, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.BookingStatus, target)
	}

	oldStatus := booking.BookingStatus
	detail, _ := json.Marshal(statusChangeDetail{
		Reference: booking.Reference,
		OldStatus: oldStatus,
		NewStatus: target,
	})

	err = s.repo.InTx(func(tx repository.Repository) error {
		if err := tx.UpdateBookingStatus(model.UpdateBookingStatusRequest{
			BookingID:     bookingID,
			BookingStatus: target,
		}); err != nil {
			return err
		}
		return tx.AppendAudit(model.AppendAuditRequest{
			ActorID:  actorID,
			Action:   model.AuditActionSetBookingStatus,
			TargetID: bookingID,
			Detail:   string(detail),
		})
	})
	if err != nil {
		return nil, err
	}

	booking.BookingStatus = target
	booking.UpdatedAt = time.Now()

	s.logger.Info("booking status changed",
		zap.String("reference", booking.Reference),
		zap.String("old_status", oldStatus),
		zap.String("new_status", target))

	s.notify(ctx, booking, model.NotificationBookingStatusChanged, oldStatus, target)

	return booking, nil
}

// SetPaymentStatus transitions the payment status of a booking, optionally
// updating the paid amount and transaction reference.
func (s *BookingLifecycle) SetPaymentStatus(ctx context.Context, actorID, bookingID uuid.UUID, target string, paidAmount *float64, transactionID *string) (*model.Booking, error) {
	if !model.ValidPaymentStatus(target) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, target)
	}
	if paidAmount != nil && *paidAmount < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, *paidAmount)
	}

	booking, err := s.repo.GetBookingByID(bookingID)
	if err != nil {
		return nil, err
	}

	if s.strict && !reachable(paymentTransitions, booking.PaymentStatus, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.PaymentStatus, target)
	}

	oldStatus := booking.PaymentStatus
	detail, _ := json.Marshal(statusChangeDetail{
		Reference: booking.Reference,
		OldStatus: oldStatus,
		NewStatus: target,
	})

	err = s.repo.InTx(func(tx repository.Repository) error {
		if err := tx.UpdatePaymentStatus(model.UpdatePaymentStatusRequest{
			BookingID:     bookingID,
			PaymentStatus: target,
			PaidAmount:    paidAmount,
			TransactionID: transactionID,
		}); err != nil {
			return err
		}
		return tx.AppendAudit(model.AppendAuditRequest{
			ActorID:  actorID,
			Action:   model.AuditActionSetPaymentStatus,
			TargetID: bookingID,
			Detail:   string(detail),
		})
	})
	if err != nil {
		return nil, err
	}

	booking.PaymentStatus = target
	if paidAmount != nil {
		booking.PaidAmount = *paidAmount
	}
	if transactionID != nil {
		booking.TransactionID = transactionID
	}
	booking.UpdatedAt = time.Now()

	s.logger.Info("payment status changed",
		zap.String("reference", booking.Reference),
		zap.String("old_status", oldStatus),
		zap.String("new_status", target))

	s.notify(ctx, booking, model.NotificationPaymentStatusChanged, oldStatus, target)

	return booking, nil
}

// DeleteBooking removes a resolved booking. Active bookings (PENDING or
// CONFIRMED) must be cancelled or completed first.
func (s *BookingLifecycle) DeleteBooking(ctx context.Context, actorID, bookingID uuid.UUID) error {
	booking, err := s.repo.GetBookingByID(bookingID)
	if err != nil {
		return err
	}

	if booking.BookingStatus == model.BookingStatusPending || booking.BookingStatus == model.BookingStatusConfirmed {
		return fmt.Errorf("%w: %s", ErrConflict, booking.BookingStatus)
	}

	detail, _ := json.Marshal(statusChangeDetail{
		Reference: booking.Reference,
		OldStatus: booking.BookingStatus,
	})

	err = s.repo.InTx(func(tx repository.Repository) error {
		if err := tx.DeleteBooking(bookingID); err != nil {
			return err
		}
		return tx.AppendAudit(model.AppendAuditRequest{
			ActorID:  actorID,
			Action:   model.AuditActionDeleteBooking,
			TargetID: bookingID,
			Detail:   string(detail),
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("booking deleted", zap.String("reference", booking.Reference))
	return nil
}

// ExportBookings produces the flat tabular projection of every booking
// matching the filter, newest-first. Purely a read; no state change.
func (s *BookingLifecycle) ExportBookings(filter model.BookingFilter) ([]model.BookingExportRow, error) {
	bookings, err := s.repo.ExportBookings(filter)
	if err != nil {
		return nil, err
	}

	rows := make([]model.BookingExportRow, 0, len(bookings))
	for i := range bookings {
		rows = append(rows, bookings[i].ToExportRow())
	}

	return rows, nil
}

func (s *BookingLifecycle) notify(ctx context.Context, booking *model.Booking, kind, oldStatus, newStatus string) {
	msg := model.BookingNotification{
		Type:           kind,
		RecipientEmail: booking.Customer.Email,
		BookingID:      booking.ID,
		Reference:      booking.Reference,
		CustomerName:   booking.Customer.Name,
		TourTitle:      booking.Tour.Title,
		OldStatus:      oldStatus,
		NewStatus:      newStatus,
		Timestamp:      time.Now(),
	}

	if err := s.notifier.PublishBookingNotification(ctx, msg); err != nil {
		s.logger.Warn("failed to publish booking notification",
			zap.String("reference", booking.Reference),
			zap.Error(err))
	}
}
