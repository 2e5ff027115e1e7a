package model

import "time"

// Trend windows recognized by the dashboard trend endpoint
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// ValidPeriod reports whether p is a recognized trend window.
func ValidPeriod(p string) bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// ============================================================================
// API DATA TRANSFER OBJECTS (External - JSON tags for HTTP)
// ============================================================================

// DashboardStats is the aggregate snapshot computed fresh on every call
type DashboardStats struct {
	TotalBookings     int64            `json:"total_bookings"`
	BookingsByStatus  map[string]int64 `json:"bookings_by_status"`
	BookingsToday     int64            `json:"bookings_today"`
	TotalRevenue      float64          `json:"total_revenue"`
	RevenueThisWeek   float64          `json:"revenue_this_week"`
	RevenueThisMonth  float64          `json:"revenue_this_month"`
	TotalCustomers    int64            `json:"total_customers"`
	TotalTours        int64            `json:"total_tours"`
	TotalVisaPackages int64            `json:"total_visa_packages"`
	TotalReviews      int64            `json:"total_reviews"`
	PendingReviews    int64            `json:"pending_reviews"`
}

// TrendPoint is one bucket of the booking trend series
type TrendPoint struct {
	Bucket   time.Time `json:"bucket"`
	Bookings int64     `json:"bookings"`
	Revenue  float64   `json:"revenue"`
}

// TrendResponse is the grouped booking trend over a caller-selected window
type TrendResponse struct {
	Period string       `json:"period"`
	Points []TrendPoint `json:"points"`
}

// DestinationCount ranks a destination by booking volume
type DestinationCount struct {
	Country  string `json:"country"`
	Bookings int64  `json:"bookings"`
}

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
