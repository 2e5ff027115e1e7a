package postgres

import (
	"fmt"
	"time"

	"github.com/roamio/travelagency/model"
)

// Payment statuses that count toward revenue
var revenueStatuses = []string{model.PaymentStatusCompleted, model.PaymentStatusPartial}

// GetDashboardStats recomputes the aggregate snapshot from the store.
// Nothing here is cached; every call re-reads.
func (r *PostgresRepository) GetDashboardStats() (*model.DashboardStats, error) {
	stats := &model.DashboardStats{
		BookingsByStatus: make(map[string]int64),
	}

	if err := r.db.Model(&model.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	var byStatus []struct {
		BookingStatus string
		Count         int64
	}
	err := r.db.Model(&model.Booking{}).
		Select("booking_status, count(*) as count").
		Group("booking_status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group bookings by status: %w", err)
	}
	for _, row := range byStatus {
		stats.BookingsByStatus[row.BookingStatus] = row.Count
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	err = r.db.Model(&model.Booking{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.BookingsToday).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count today's bookings: %w", err)
	}

	revenue := func(since *time.Time) (float64, error) {
		var total *float64
		query := r.db.Model(&model.Booking{}).
			Select("sum(paid_amount)").
			Where("payment_status IN ?", revenueStatuses)
		if since != nil {
			query = query.Where("created_at >= ?", *since)
		}
		if err := query.Scan(&total).Error; err != nil {
			return 0, err
		}
		if total == nil {
			return 0, nil
		}
		return *total, nil
	}

	if stats.TotalRevenue, err = revenue(nil); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if stats.RevenueThisWeek, err = revenue(&startOfWeek); err != nil {
		return nil, fmt.Errorf("failed to sum weekly revenue: %w", err)
	}
	if stats.RevenueThisMonth, err = revenue(&startOfMonth); err != nil {
		return nil, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}

	if err := r.db.Model(&model.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if err := r.db.Model(&model.Tour{}).Count(&stats.TotalTours).Error; err != nil {
		return nil, fmt.Errorf("failed to count tours: %w", err)
	}
	if err := r.db.Model(&model.VisaPackage{}).Count(&stats.TotalVisaPackages).Error; err != nil {
		return nil, fmt.Errorf("failed to count visa packages: %w", err)
	}
	if err := r.db.Model(&model.Review{}).Count(&stats.TotalReviews).Error; err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}
	err = r.db.Model(&model.Review{}).
		Where("is_approved = ?", false).
		Count(&stats.PendingReviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count pending reviews: %w", err)
	}

	return stats, nil
}

// GetBookingTrend returns the booking series over the window, bucketed by
// day for week/month windows and by month for the year window.
func (r *PostgresRepository) GetBookingTrend(period string) ([]model.TrendPoint, error) {
	now := time.Now()

	var since time.Time
	bucket := "day"
	switch period {
	case model.PeriodWeek:
		since = now.AddDate(0, 0, -7)
	case model.PeriodMonth:
		since = now.AddDate(0, -1, 0)
	case model.PeriodYear:
		since = now.AddDate(-1, 0, 0)
		bucket = "month"
	default:
		return nil, fmt.Errorf("unrecognized trend period: %s", period)
	}

	var points []model.TrendPoint
	err := r.db.Model(&model.Booking{}).
		Select(fmt.Sprintf("date_trunc('%s', created_at) as bucket, count(*) as bookings, coalesce(sum(paid_amount), 0) as revenue", bucket)).
		Where("created_at >= ?", since).
		Group("bucket").
		Order("bucket ASC").
		Scan(&points).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute booking trend: %w", err)
	}

	return points, nil
}

// GetPopularDestinations ranks destinations by booking count
func (r *PostgresRepository) GetPopularDestinations(limit int) ([]model.DestinationCount, error) {
	var destinations []model.DestinationCount

	err := r.db.Model(&model.Booking{}).
		Select("tours.country as country, count(bookings.id) as bookings").
		Joins("JOIN tours ON tours.id = bookings.tour_id").
		Group("tours.country").
		Order("bookings DESC").
		Limit(limit).
		Scan(&destinations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank destinations: %w", err)
	}

	return destinations, nil
}
