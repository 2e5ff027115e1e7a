package service

import (
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// fakeRepository is an in-memory repository.Repository for service tests.
// InTx snapshots state and restores it when fn fails, emulating rollback.
type fakeRepository struct {
	tours    map[uuid.UUID]*model.Tour
	bookings map[uuid.UUID]*model.Booking
	reviews  map[uuid.UUID]*model.Review
	audits   []model.AuditRecord

	// Injectable failures
	failUpdateTourRating bool
	failAppendAudit      error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tours:    make(map[uuid.UUID]*model.Tour),
		bookings: make(map[uuid.UUID]*model.Booking),
		reviews:  make(map[uuid.UUID]*model.Review),
	}
}

func (f *fakeRepository) snapshot() *fakeRepository {
	snap := newFakeRepository()
	for id, t := range f.tours {
		c := *t
		snap.tours[id] = &c
	}
	for id, b := range f.bookings {
		c := *b
		snap.bookings[id] = &c
	}
	for id, r := range f.reviews {
		c := *r
		snap.reviews[id] = &c
	}
	snap.audits = append([]model.AuditRecord(nil), f.audits...)
	return snap
}

func (f *fakeRepository) restore(snap *fakeRepository) {
	f.tours = snap.tours
	f.bookings = snap.bookings
	f.reviews = snap.reviews
	f.audits = snap.audits
}

func (f *fakeRepository) InTx(fn func(repository.Repository) error) error {
	snap := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(snap)
		return err
	}
	return nil
}

func (f *fakeRepository) GetDB() *gorm.DB { return nil }

// --- tours ---

func (f *fakeRepository) CreateTour(req model.CreateTourRequest) (*model.Tour, error) {
	tour := &model.Tour{ID: uuid.New(), Title: req.Title, Slug: req.Slug, Country: req.Country}
	f.tours[tour.ID] = tour
	return tour, nil
}

func (f *fakeRepository) UpdateTour(req model.UpdateTourRequest) (*model.Tour, error) {
	tour, ok := f.tours[req.TourID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return tour, nil
}

func (f *fakeRepository) DeleteTour(tourID uuid.UUID) error {
	if _, ok := f.tours[tourID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tours, tourID)
	return nil
}

func (f *fakeRepository) GetTourByID(tourID uuid.UUID) (*model.Tour, error) {
	tour, ok := f.tours[tourID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return tour, nil
}

func (f *fakeRepository) GetTourBySlug(slug string) (*model.Tour, error) {
	for _, t := range f.tours {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepository) ListTours(filter model.TourFilter) ([]model.Tour, error) {
	var tours []model.Tour
	for _, t := range f.tours {
		tours = append(tours, *t)
	}
	return tours, nil
}

func (f *fakeRepository) ListFeaturedTours() ([]model.Tour, error) {
	var tours []model.Tour
	for _, t := range f.tours {
		if t.Featured {
			tours = append(tours, *t)
		}
	}
	return tours, nil
}

func (f *fakeRepository) UpdateTourRating(tourID uuid.UUID, rating float64, totalReviews int) error {
	if f.failUpdateTourRating {
		return gorm.ErrInvalidTransaction
	}
	tour, ok := f.tours[tourID]
	if !ok {
		return repository.ErrNotFound
	}
	tour.Rating = rating
	tour.TotalReviews = totalReviews
	return nil
}

// --- visas ---

func (f *fakeRepository) ListVisaPackages(filter model.VisaFilter) ([]model.VisaPackage, error) {
	return nil, nil
}

func (f *fakeRepository) GetVisaPackageBySlug(slug string) (*model.VisaPackage, error) {
	return nil, repository.ErrNotFound
}

// --- bookings ---

func (f *fakeRepository) GetBookingByID(bookingID uuid.UUID) (*model.Booking, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *booking
	return &c, nil
}

func (f *fakeRepository) ListBookings(filter model.BookingFilter) ([]model.Booking, int, error) {
	bookings, err := f.ExportBookings(filter)
	return bookings, len(bookings), err
}

func (f *fakeRepository) ExportBookings(filter model.BookingFilter) ([]model.Booking, error) {
	var bookings []model.Booking
	for _, b := range f.bookings {
		if filter.BookingStatus != "" && b.BookingStatus != filter.BookingStatus {
			continue
		}
		if filter.PaymentStatus != "" && b.PaymentStatus != filter.PaymentStatus {
			continue
		}
		bookings = append(bookings, *b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (f *fakeRepository) UpdateBookingStatus(req model.UpdateBookingStatusRequest) error {
	booking, ok := f.bookings[req.BookingID]
	if !ok {
		return repository.ErrNotFound
	}
	booking.BookingStatus = req.BookingStatus
	return nil
}

func (f *fakeRepository) UpdatePaymentStatus(req model.UpdatePaymentStatusRequest) error {
	booking, ok := f.bookings[req.BookingID]
	if !ok {
		return repository.ErrNotFound
	}
	booking.PaymentStatus = req.PaymentStatus
	if req.PaidAmount != nil {
		booking.PaidAmount = *req.PaidAmount
	}
	if req.TransactionID != nil {
		booking.TransactionID = req.TransactionID
	}
	return nil
}

func (f *fakeRepository) DeleteBooking(bookingID uuid.UUID) error {
	if _, ok := f.bookings[bookingID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.bookings, bookingID)
	return nil
}

// --- reviews ---

func (f *fakeRepository) CreateReview(req model.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		ID:         uuid.New(),
		TourID:     req.TourID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	f.reviews[review.ID] = review
	return review, nil
}

func (f *fakeRepository) GetReviewByID(reviewID uuid.UUID) (*model.Review, error) {
	review, ok := f.reviews[reviewID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *review
	return &c, nil
}

func (f *fakeRepository) ListReviews(filter model.ReviewFilter) ([]model.Review, int, error) {
	var reviews []model.Review
	for _, r := range f.reviews {
		reviews = append(reviews, *r)
	}
	return reviews, len(reviews), nil
}

func (f *fakeRepository) SetReviewApproval(reviewID uuid.UUID, approved bool) error {
	review, ok := f.reviews[reviewID]
	if !ok {
		return repository.ErrNotFound
	}
	review.IsApproved = approved
	return nil
}

func (f *fakeRepository) DeleteReview(reviewID uuid.UUID) error {
	if _, ok := f.reviews[reviewID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.reviews, reviewID)
	return nil
}

func (f *fakeRepository) ListApprovedReviews(tourID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	for _, r := range f.reviews {
		if r.TourID == tourID && r.IsApproved {
			reviews = append(reviews, *r)
		}
	}
	return reviews, nil
}

// --- users ---

func (f *fakeRepository) CreateUser(req model.CreateUserRequest) (*model.User, error) {
	return &model.User{ID: uuid.New(), Email: req.Email, Role: req.Role}, nil
}

func (f *fakeRepository) GetUserByEmail(email string) (*model.User, error) {
	return nil, repository.ErrNotFound
}

// --- jobs ---

func (f *fakeRepository) ListJobPostings() ([]model.JobPosting, error) { return nil, nil }

func (f *fakeRepository) GetJobPostingBySlug(slug string) (*model.JobPosting, error) {
	return nil, repository.ErrNotFound
}

// --- audit ---

func (f *fakeRepository) AppendAudit(req model.AppendAuditRequest) error {
	if f.failAppendAudit != nil {
		return f.failAppendAudit
	}
	f.audits = append(f.audits, model.AuditRecord{
		ID:       uuid.New(),
		ActorID:  req.ActorID,
		Action:   req.Action,
		TargetID: req.TargetID,
		Detail:   req.Detail,
	})
	return nil
}

// --- dashboard ---

func (f *fakeRepository) GetDashboardStats() (*model.DashboardStats, error) { return nil, nil }

func (f *fakeRepository) GetBookingTrend(period string) ([]model.TrendPoint, error) {
	return nil, nil
}

func (f *fakeRepository) GetPopularDestinations(limit int) ([]model.DestinationCount, error) {
	return nil, nil
}
