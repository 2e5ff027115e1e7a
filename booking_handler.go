package main

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
	"github.com/roamio/travelagency/service"
)

type BookingHandler struct {
	repo      repository.BookingRepository
	lifecycle *service.BookingLifecycle
	logger    *zap.Logger
}

func NewBookingHandler(repo repository.BookingRepository, lifecycle *service.BookingLifecycle, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		repo:      repo,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

func parseBookingFilter(c *gin.Context) model.BookingFilter {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit > 100 {
		limit = 100
	}
	if limit < 1 {
		limit = 20
	}

	filter := model.BookingFilter{
		BookingStatus: c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Limit:         limit,
		Offset:        offset,
	}

	if dateFromStr := c.Query("date_from"); dateFromStr != "" {
		if dateFrom, err := time.Parse("2006-01-02", dateFromStr); err == nil {
			filter.DateFrom = &dateFrom
		}
	}
	if dateToStr := c.Query("date_to"); dateToStr != "" {
		if dateTo, err := time.Parse("2006-01-02", dateToStr); err == nil {
			filter.DateTo = &dateTo
		}
	}

	return filter
}

// ListBookings handles the admin booking listing with filtering and
// pagination, newest-first
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, total, err := h.repo.ListBookings(parseBookingFilter(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := model.BookingListResponse{
		Bookings: make([]model.BookingResponse, 0, len(bookings)),
		Total:    total,
	}
	for i := range bookings {
		response.Bookings = append(response.Bookings, bookings[i].ToBookingResponse())
	}

	c.JSON(http.StatusOK, response)
}

// GetBooking handles a single booking lookup
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid booking ID format",
		})
		return
	}

	booking, err := h.repo.GetBookingByID(bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking.ToBookingResponse())
}

// SetBookingStatus handles an admin fulfillment status transition
func (h *BookingHandler) SetBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid booking ID format",
		})
		return
	}

	var req model.SetBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	booking, err := h.lifecycle.SetBookingStatus(c.Request.Context(), actorID(c), bookingID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking.ToBookingResponse())
}

// SetPaymentStatus handles an admin payment status transition
func (h *BookingHandler) SetPaymentStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid booking ID format",
		})
		return
	}

	var req model.SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	booking, err := h.lifecycle.SetPaymentStatus(c.Request.Context(), actorID(c), bookingID, req.Status, req.PaidAmount, req.TransactionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking.ToBookingResponse())
}

// DeleteBooking handles admin deletion of a resolved booking
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:   "invalid_id",
			Message: "Invalid booking ID format",
		})
		return
	}

	if err := h.lifecycle.DeleteBooking(c.Request.Context(), actorID(c), bookingID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportBookings streams the filtered booking set as a CSV attachment,
// newest-first
func (h *BookingHandler) ExportBookings(c *gin.Context) {
	filter := parseBookingFilter(c)
	filter.Limit = 0
	filter.Offset = 0

	rows, err := h.lifecycle.ExportBookings(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("bookings_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	writer := csv.NewWriter(c.Writer)
	header := []string{
		"reference", "customer_name", "customer_email", "customer_phone",
		"tour_title", "destination", "start_date", "travelers",
		"total_price", "booking_status", "payment_status", "created_at",
	}
	if err := writer.Write(header); err != nil {
		h.logger.Error("failed to write export header", zap.Error(err))
		return
	}

	for i := range rows {
		row := rows[i]
		record := []string{
			row.Reference,
			row.CustomerName,
			row.CustomerEmail,
			row.CustomerPhone,
			row.TourTitle,
			row.Destination,
			row.StartDate.Format("2006-01-02"),
			strconv.Itoa(row.Travelers),
			strconv.FormatFloat(row.TotalPrice, 'f', 2, 64),
			row.BookingStatus,
			row.PaymentStatus,
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			h.logger.Error("failed to write export row", zap.Error(err))
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error("failed to flush export", zap.Error(err))
	}
}
