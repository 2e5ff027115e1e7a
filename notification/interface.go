package notification

import (
	"context"

	"github.com/roamio/travelagency/model"
)

// Publisher delivers booking notifications to the notification worker.
// Delivery is best-effort: the admin operation has already committed by
// the time a notification is published.
type Publisher interface {
	PublishBookingNotification(ctx context.Context, msg model.BookingNotification) error
}

// Noop discards notifications. Used when Kafka is disabled.
type Noop struct{}

func (Noop) PublishBookingNotification(ctx context.Context, msg model.BookingNotification) error {
	return nil
}
