package service

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// ReviewService moderates reviews and keeps the owning tour's aggregate
// rating consistent. Every approval, rejection and deletion recomputes the
// tour's rating inside the same transaction, so a stale aggregate never
// persists past a committed review change.
type ReviewService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewReviewService(repo repository.Repository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		logger: logger,
	}
}

type reviewChangeDetail struct {
	TourID uuid.UUID `json:"tour_id"`
	Rating int       `json:"rating"`
}

// Approve gates a review into the tour's aggregate rating.
func (s *ReviewService) Approve(actorID, reviewID uuid.UUID) (*model.Review, error) {
	return s.setApproval(actorID, reviewID, true, model.AuditActionApproveReview)
}

// Reject gates a review out of the tour's aggregate rating.
func (s *ReviewService) Reject(actorID, reviewID uuid.UUID) (*model.Review, error) {
	return s.setApproval(actorID, reviewID, false, model.AuditActionRejectReview)
}

func (s *ReviewService) setApproval(actorID, reviewID uuid.UUID, approved bool, action string) (*model.Review, error) {
	review, err := s.repo.GetReviewByID(reviewID)
	if err != nil {
		return nil, err
	}

	detail, _ := json.Marshal(reviewChangeDetail{TourID: review.TourID, Rating: review.Rating})

	err = s.repo.InTx(func(tx repository.Repository) error {
		if err := tx.SetReviewApproval(reviewID, approved); err != nil {
			return err
		}
		if err := recomputeTourRating(tx, review.TourID); err != nil {
			return err
		}
		return tx.AppendAudit(model.AppendAuditRequest{
			ActorID:  actorID,
			Action:   action,
			TargetID: reviewID,
			Detail:   string(detail),
		})
	})
	if err != nil {
		return nil, err
	}

	review.IsApproved = approved

	s.logger.Info("review approval changed",
		zap.String("review_id", reviewID.String()),
		zap.Bool("approved", approved))

	return review, nil
}

// Delete removes a review and recomputes the tour's rating in the same
// transaction.
func (s *ReviewService) Delete(actorID, reviewID uuid.UUID) error {
	review, err := s.repo.GetReviewByID(reviewID)
	if err != nil {
		return err
	}

	detail, _ := json.Marshal(reviewChangeDetail{TourID: review.TourID, Rating: review.Rating})

	err = s.repo.InTx(func(tx repository.Repository) error {
		if err := tx.DeleteReview(reviewID); err != nil {
			return err
		}
		if err := recomputeTourRating(tx, review.TourID); err != nil {
			return err
		}
		return tx.AppendAudit(model.AppendAuditRequest{
			ActorID:  actorID,
			Action:   model.AuditActionDeleteReview,
			TargetID: reviewID,
			Detail:   string(detail),
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("review deleted", zap.String("review_id", reviewID.String()))
	return nil
}

// RecomputeTourRating rebuilds the tour's aggregate from the current set
// of approved reviews. Idempotent: recomputing twice with no intervening
// review change yields the same result.
func (s *ReviewService) RecomputeTourRating(tourID uuid.UUID) error {
	return recomputeTourRating(s.repo, tourID)
}

func recomputeTourRating(repo repository.Repository, tourID uuid.UUID) error {
	reviews, err := repo.ListApprovedReviews(tourID)
	if err != nil {
		return err
	}

	rating, total := aggregateRating(reviews)
	return repo.UpdateTourRating(tourID, rating, total)
}

// aggregateRating returns the arithmetic mean of the review ratings and
// their count, or (0, 0) when there are none.
func aggregateRating(reviews []model.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}

	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
	}

	mean := float64(sum) / float64(len(reviews))
	// Round to two decimals to match the stored column precision.
	return math.Round(mean*100) / 100, len(reviews)
}
