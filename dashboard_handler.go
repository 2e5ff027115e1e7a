package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

type DashboardHandler struct {
	repo   repository.DashboardRepository
	logger *zap.Logger
}

func NewDashboardHandler(repo repository.DashboardRepository, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		repo:   repo,
		logger: logger,
	}
}

// GetStats handles the admin dashboard snapshot. Computed fresh on every
// call; never cached.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.repo.GetDashboardStats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTrend handles the booking trend series over a caller-selected window
func (h *DashboardHandler) GetTrend(c *gin.Context) {
	period := c.DefaultQuery("period", model.PeriodMonth)
	if !model.ValidPeriod(period) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: "period must be one of week, month, year",
		})
		return
	}

	points, err := h.repo.GetBookingTrend(period)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TrendResponse{
		Period: period,
		Points: points,
	})
}

// GetPopularDestinations handles the destination ranking by booking count
func (h *DashboardHandler) GetPopularDestinations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 50 {
		limit = 5
	}

	destinations, err := h.repo.GetPopularDestinations(limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"destinations": destinations})
}
