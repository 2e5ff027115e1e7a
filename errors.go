package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
	"github.com/roamio/travelagency/service"
)

// respondError maps service and repository errors onto admin API failures.
// Admin mutation paths surface every error; nothing is masked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrIllegalTransition), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, model.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "Operation failed",
		})
	}
}
