package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
)

func seedTour(repo *fakeRepository) *model.Tour {
	tour := &model.Tour{ID: uuid.New(), Title: "Kyoto Temples", Slug: "kyoto-temples", Country: "Japan"}
	repo.tours[tour.ID] = tour
	return tour
}

func seedReview(repo *fakeRepository, tourID uuid.UUID, rating int, approved bool) *model.Review {
	review := &model.Review{
		ID:         uuid.New(),
		TourID:     tourID,
		CustomerID: uuid.New(),
		Rating:     rating,
		IsApproved: approved,
	}
	repo.reviews[review.ID] = review
	return review
}

func TestRecomputeTourRatingMean(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	seedReview(repo, tour.ID, 5, true)
	seedReview(repo, tour.ID, 4, true)
	seedReview(repo, tour.ID, 3, true)
	svc := NewReviewService(repo, zap.NewNop())

	require.NoError(t, svc.RecomputeTourRating(tour.ID))

	assert.Equal(t, 4.0, repo.tours[tour.ID].Rating)
	assert.Equal(t, 3, repo.tours[tour.ID].TotalReviews)
}

func TestRecomputeTourRatingNoApprovedReviews(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	tour.Rating = 4.5
	tour.TotalReviews = 9
	seedReview(repo, tour.ID, 2, false)
	svc := NewReviewService(repo, zap.NewNop())

	require.NoError(t, svc.RecomputeTourRating(tour.ID))

	assert.Equal(t, 0.0, repo.tours[tour.ID].Rating)
	assert.Equal(t, 0, repo.tours[tour.ID].TotalReviews)
}

func TestRecomputeTourRatingIdempotent(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	seedReview(repo, tour.ID, 5, true)
	seedReview(repo, tour.ID, 2, true)
	svc := NewReviewService(repo, zap.NewNop())

	require.NoError(t, svc.RecomputeTourRating(tour.ID))
	first, firstCount := repo.tours[tour.ID].Rating, repo.tours[tour.ID].TotalReviews

	require.NoError(t, svc.RecomputeTourRating(tour.ID))
	assert.Equal(t, first, repo.tours[tour.ID].Rating)
	assert.Equal(t, firstCount, repo.tours[tour.ID].TotalReviews)
}

func TestApproveCountsReviewTowardRating(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	seedReview(repo, tour.ID, 5, true)
	seedReview(repo, tour.ID, 3, true)
	pending := seedReview(repo, tour.ID, 1, false)
	svc := NewReviewService(repo, zap.NewNop())
	actor := uuid.New()

	// Aggregate over the two approved reviews only.
	require.NoError(t, svc.RecomputeTourRating(tour.ID))
	assert.Equal(t, 4.0, repo.tours[tour.ID].Rating)
	assert.Equal(t, 2, repo.tours[tour.ID].TotalReviews)

	review, err := svc.Approve(actor, pending.ID)
	require.NoError(t, err)
	assert.True(t, review.IsApproved)

	assert.Equal(t, 3.0, repo.tours[tour.ID].Rating)
	assert.Equal(t, 3, repo.tours[tour.ID].TotalReviews)

	require.Len(t, repo.audits, 1)
	assert.Equal(t, model.AuditActionApproveReview, repo.audits[0].Action)
	assert.Equal(t, pending.ID, repo.audits[0].TargetID)
}

func TestRejectRemovesReviewFromRating(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	kept := seedReview(repo, tour.ID, 4, true)
	rejected := seedReview(repo, tour.ID, 1, true)
	svc := NewReviewService(repo, zap.NewNop())

	_, err := svc.Reject(uuid.New(), rejected.ID)
	require.NoError(t, err)

	assert.False(t, repo.reviews[rejected.ID].IsApproved)
	assert.True(t, repo.reviews[kept.ID].IsApproved)
	assert.Equal(t, 4.0, repo.tours[tour.ID].Rating)
	assert.Equal(t, 1, repo.tours[tour.ID].TotalReviews)
	assert.Len(t, repo.audits, 1)
}

func TestDeleteReviewRecomputesRating(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	seedReview(repo, tour.ID, 5, true)
	doomed := seedReview(repo, tour.ID, 1, true)
	svc := NewReviewService(repo, zap.NewNop())

	require.NoError(t, svc.Delete(uuid.New(), doomed.ID))

	assert.NotContains(t, repo.reviews, doomed.ID)
	assert.Equal(t, 5.0, repo.tours[tour.ID].Rating)
	assert.Equal(t, 1, repo.tours[tour.ID].TotalReviews)
	require.Len(t, repo.audits, 1)
	assert.Equal(t, model.AuditActionDeleteReview, repo.audits[0].Action)
}

func TestRecomputeFailureRollsBackApproval(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	pending := seedReview(repo, tour.ID, 4, false)
	repo.failUpdateTourRating = true
	svc := NewReviewService(repo, zap.NewNop())

	_, err := svc.Approve(uuid.New(), pending.ID)
	require.Error(t, err)

	// The approval must not persist with a stale aggregate.
	assert.False(t, repo.reviews[pending.ID].IsApproved)
	assert.Empty(t, repo.audits)
}

func TestRatingRoundedToTwoDecimals(t *testing.T) {
	repo := newFakeRepository()
	tour := seedTour(repo)
	seedReview(repo, tour.ID, 5, true)
	seedReview(repo, tour.ID, 5, true)
	seedReview(repo, tour.ID, 4, true)
	svc := NewReviewService(repo, zap.NewNop())

	require.NoError(t, svc.RecomputeTourRating(tour.ID))

	assert.Equal(t, 4.67, repo.tours[tour.ID].Rating)
	assert.Equal(t, 3, repo.tours[tour.ID].TotalReviews)
}
