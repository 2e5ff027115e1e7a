package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/cache"
	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

type VisaHandler struct {
	repo   repository.VisaRepository
	cache  cache.Store
	logger *zap.Logger
}

func NewVisaHandler(repo repository.VisaRepository, cache cache.Store, logger *zap.Logger) *VisaHandler {
	return &VisaHandler{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListVisaPackages handles the public visa package listing, read-through
// cached and degrading to an empty result set on store failure.
func (h *VisaHandler) ListVisaPackages(c *gin.Context) {
	filter := model.VisaFilter{
		Country: c.Query("country"),
		Type:    c.Query("type"),
	}

	key := cache.VisaListKey(filter)
	if cached, ok := h.cache.Get(key); ok {
		response := cached.(model.VisaPackageListResponse)
		response.Cached = true
		c.JSON(http.StatusOK, response)
		return
	}

	packages, err := h.repo.ListVisaPackages(filter)
	if err != nil {
		h.logger.Error("failed to list visa packages", zap.Error(err))
		c.JSON(http.StatusOK, model.VisaPackageListResponse{Packages: []model.VisaPackageResponse{}})
		return
	}

	response := model.VisaPackageListResponse{
		Packages: make([]model.VisaPackageResponse, 0, len(packages)),
		Total:    len(packages),
	}
	for i := range packages {
		response.Packages = append(response.Packages, packages[i].ToVisaPackageResponse())
	}

	h.cache.Put(key, response)
	c.JSON(http.StatusOK, response)
}

// GetVisaPackage handles a single visa package lookup by slug
func (h *VisaHandler) GetVisaPackage(c *gin.Context) {
	slug := c.Param("slug")

	key := cache.VisaSlugKey(slug)
	if cached, ok := h.cache.Get(key); ok {
		c.JSON(http.StatusOK, model.VisaPackageDetailResponse{
			Package: cached.(model.VisaPackageResponse),
			Cached:  true,
		})
		return
	}

	pkg, err := h.repo.GetVisaPackageBySlug(slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.logger.Error("failed to get visa package", zap.String("slug", slug), zap.Error(err))
		}
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: "Visa package not found",
		})
		return
	}

	response := pkg.ToVisaPackageResponse()
	h.cache.Put(key, response)
	c.JSON(http.StatusOK, model.VisaPackageDetailResponse{Package: response})
}
