package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
)

// Sentinel errors returned by implementations. Anything else is a
// pass-through data-store failure.
var (
	ErrNotFound    = errors.New("record not found")
	ErrEmailExists = errors.New("email already exists")
)

// Repository defines the interface for all data store operations.
// InTx runs fn against a transaction-scoped repository; the transaction
// commits iff fn returns nil.
type Repository interface {
	TourRepository
	VisaRepository
	BookingRepository
	ReviewRepository
	UserRepository
	JobRepository
	AuditRepository
	DashboardRepository

	InTx(fn func(Repository) error) error

	// Health check
	GetDB() *gorm.DB
}

// TourRepository defines tour catalog operations
type TourRepository interface {
	CreateTour(req model.CreateTourRequest) (*model.Tour, error)
	UpdateTour(req model.UpdateTourRequest) (*model.Tour, error)
	DeleteTour(tourID uuid.UUID) error
	GetTourByID(tourID uuid.UUID) (*model.Tour, error)
	GetTourBySlug(slug string) (*model.Tour, error)
	ListTours(filter model.TourFilter) ([]model.Tour, error)
	ListFeaturedTours() ([]model.Tour, error)
	UpdateTourRating(tourID uuid.UUID, rating float64, totalReviews int) error
}

// VisaRepository defines visa package catalog operations
type VisaRepository interface {
	ListVisaPackages(filter model.VisaFilter) ([]model.VisaPackage, error)
	GetVisaPackageBySlug(slug string) (*model.VisaPackage, error)
}

// BookingRepository defines booking data operations
type BookingRepository interface {
	GetBookingByID(bookingID uuid.UUID) (*model.Booking, error)
	ListBookings(filter model.BookingFilter) ([]model.Booking, int, error)
	UpdateBookingStatus(req model.UpdateBookingStatusRequest) error
	UpdatePaymentStatus(req model.UpdatePaymentStatusRequest) error
	DeleteBooking(bookingID uuid.UUID) error
	ExportBookings(filter model.BookingFilter) ([]model.Booking, error)
}

// ReviewRepository defines review data operations
type ReviewRepository interface {
	CreateReview(req model.CreateReviewRequest) (*model.Review, error)
	GetReviewByID(reviewID uuid.UUID) (*model.Review, error)
	ListReviews(filter model.ReviewFilter) ([]model.Review, int, error)
	SetReviewApproval(reviewID uuid.UUID, approved bool) error
	DeleteReview(reviewID uuid.UUID) error
	ListApprovedReviews(tourID uuid.UUID) ([]model.Review, error)
}

// UserRepository defines back-office user operations
type UserRepository interface {
	CreateUser(req model.CreateUserRequest) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
}

// JobRepository defines career posting operations
type JobRepository interface {
	ListJobPostings() ([]model.JobPosting, error)
	GetJobPostingBySlug(slug string) (*model.JobPosting, error)
}

// AuditRepository defines the append-only audit log
type AuditRepository interface {
	AppendAudit(req model.AppendAuditRequest) error
}

// DashboardRepository defines the on-demand aggregate queries. Every call
// recomputes from the store; nothing here is cached.
type DashboardRepository interface {
	GetDashboardStats() (*model.DashboardStats, error)
	GetBookingTrend(period string) ([]model.TrendPoint, error)
	GetPopularDestinations(limit int) ([]model.DestinationCount, error)
}
