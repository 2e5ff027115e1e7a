package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
	"github.com/roamio/travelagency/service"
)

type ReviewHandler struct {
	repo    repository.ReviewRepository
	reviews *service.ReviewService
	logger  *zap.Logger
}

func NewReviewHandler(repo repository.ReviewRepository, reviews *service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		repo:    repo,
		reviews: reviews,
		logger:  logger,
	}
}

// SubmitReview handles public review submission. Reviews start unapproved
// and do not count toward the tour rating until an admin approves them.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req model.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	review, err := h.repo.CreateReview(model.CreateReviewRequest{
		TourID:     req.TourID,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review.ToReviewResponse())
}

// ListReviews handles the admin review listing with filters
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 20
	}

	filter := model.ReviewFilter{Limit: limit, Offset: offset}

	if tourIDStr := c.Query("tour_id"); tourIDStr != "" {
		if tourID, err := uuid.Parse(tourIDStr); err == nil {
			filter.TourID = &tourID
		}
	}
	if approvedStr := c.Query("approved"); approvedStr != "" {
		if approved, err := strconv.ParseBool(approvedStr); err == nil {
			filter.Approved = &approved
		}
	}

	reviews, total, err := h.repo.ListReviews(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	response := model.ReviewListResponse{
		Reviews: make([]model.ReviewResponse, 0, len(reviews)),
		Total:   total,
	}
	for i := range reviews {
		response.Reviews = append(response.Reviews, reviews[i].ToReviewResponse())
	}

	c.JSON(http.StatusOK, response)
}

// ApproveReview gates a review into the tour's aggregate rating
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	h.setApproval(c, true)
}

// RejectReview gates a review out of the tour's aggregate rating
func (h *ReviewHandler) RejectReview(c *gin.Context) {
	h.setApproval(c, false)
}

func (h *ReviewHandler) setApproval(c *gin.Context, approve bool) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID format",
		})
		return
	}

	var review *model.Review
	if approve {
		review, err = h.reviews.Approve(actorID(c), reviewID)
	} else {
		review, err = h.reviews.Reject(actorID(c), reviewID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review.ToReviewResponse())
}

// DeleteReview removes a review and recomputes the tour rating
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid review ID format",
		})
		return
	}

	if err := h.reviews.Delete(actorID(c), reviewID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
