package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/cache"
	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

type TourHandler struct {
	repo   repository.TourRepository
	cache  cache.Store
	logger *zap.Logger
}

func NewTourHandler(repo repository.TourRepository, cache cache.Store, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListTours handles the public tour listing with filtering and sorting.
// Results are served read-through from the query cache; on a data store
// failure the endpoint degrades to an empty result set.
func (h *TourHandler) ListTours(c *gin.Context) {
	minPrice, _ := strconv.ParseFloat(c.DefaultQuery("min_price", "0"), 64)
	maxPrice, _ := strconv.ParseFloat(c.DefaultQuery("max_price", "0"), 64)

	filter := model.TourFilter{
		Category: c.Query("category"),
		Country:  c.Query("country"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		SortBy:   c.Query("sort_by"),
	}

	key := cache.TourListKey(filter)
	if cached, ok := h.cache.Get(key); ok {
		response := cached.(model.TourListResponse)
		response.Cached = true
		c.JSON(http.StatusOK, response)
		return
	}

	tours, err := h.repo.ListTours(filter)
	if err != nil {
		h.logger.Error("failed to list tours", zap.Error(err))
		c.JSON(http.StatusOK, model.TourListResponse{Tours: []model.TourResponse{}})
		return
	}

	response := model.TourListResponse{
		Tours: make([]model.TourResponse, 0, len(tours)),
		Total: len(tours),
	}
	for i := range tours {
		response.Tours = append(response.Tours, tours[i].ToTourResponse())
	}

	h.cache.Put(key, response)
	c.JSON(http.StatusOK, response)
}

// GetTour handles a single-tour lookup by slug, read-through cached.
func (h *TourHandler) GetTour(c *gin.Context) {
	slug := c.Param("slug")

	key := cache.TourSlugKey(slug)
	if cached, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, model.TourDetailResponse{
			Tour:   cached.(model.TourResponse),
			Cached: true,
		})
		return
	}

	tour, err := h.repo.GetTourBySlug(slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.Error("failed to get tour", zap.String("slug", slug), zap.Error(err))
		}
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: "Tour not found",
		})
		return
	}

	response := tour.ToTourResponse()
	h.cache.Put(key, response)
	c.JSON(http.StatusOK, model.TourDetailResponse{Tour: response})
}

// ListFeaturedTours handles the landing-page featured listing, cached
// under a single key.
func (h *TourHandler) ListFeaturedTours(c *gin.Context) {
	key := cache.FeaturedToursKey()
	if cached, ok := h.cache.Get(key); ok {
		response := cached.(model.TourListResponse)
		response.Cached = true
		c.JSON(http.StatusOK, response)
		return
	}

	tours, err := h.repo.ListFeaturedTours()
	if err != nil {
		h.logger.Error("failed to list featured tours", zap.Error(err))
		c.JSON(http.StatusOK, model.TourListResponse{Tours: []model.TourResponse{}})
		return
	}

	response := model.TourListResponse{
		Tours: make([]model.TourResponse, 0, len(tours)),
		Total: len(tours),
	}
	for i := range tours {
		response.Tours = append(response.Tours, tours[i].ToTourResponse())
	}

	h.cache.Put(key, response)
	c.JSON(http.StatusOK, response)
}

// CreateTour handles admin tour creation. Catalog caches are not
// invalidated; readers see the new tour once the TTL lapses.
func (h *TourHandler) CreateTour(c *gin.Context) {
	var req model.CreateTourAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	tour, err := h.repo.CreateTour(req.ToCreateTourRequest())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tour.ToTourResponse())
}

// UpdateTour handles admin partial tour updates
func (h *TourHandler) UpdateTour(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid tour ID format",
		})
		return
	}

	var req model.UpdateTourAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	tour, err := h.repo.UpdateTour(model.UpdateTourRequest{
		TourID:       tourID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Country:      req.Country,
		City:         req.City,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		MaxGroupSize: req.MaxGroupSize,
		Featured:     req.Featured,
		Images:       req.Images,
		Highlights:   req.Highlights,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tour.ToTourResponse())
}

// DeleteTour handles admin tour deletion
func (h *TourHandler) DeleteTour(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid tour ID format",
		})
		return
	}

	if err := h.repo.DeleteTour(tourID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
