package handlers

import (
	"net/http"

	"github.com/eventstay/hotel-booking-backend/internal/middleware"
	"github.com/eventstay/hotel-booking-backend/internal/models"
	"github.com/eventstay/hotel-booking-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles room reservation operations.
type BookingHandler struct {
	bookingService *services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// GetMyBooking returns the authenticated user's active booking.
// @Summary Get my booking
// @Produce json
// @Success 200 {object} models.Booking
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "No booking"
// @Security BearerAuth
// @Router /api/v1/booking [get]
func (h *BookingHandler) GetMyBooking(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.bookingService.GetUserBooking(userCtx.UserID.String())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking reserves a room for the authenticated user.
// @Summary Create booking
// @Accept json
// @Produce json
// @Param request body models.CreateBookingRequest true "Room to reserve"
// @Success 200 {object} models.CreateBookingResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 402 {object} map[string]interface{} "Ticket does not permit booking"
// @Failure 403 {object} map[string]interface{} "Room full"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Security BearerAuth
// @Router /api/v1/booking [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(userCtx.UserID.String(), req.RoomID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CreateBookingResponse{ID: booking.ID})
}

// UpdateBooking swaps the authenticated user's booking to another room.
// @Summary Change booked room
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param request body models.UpdateBookingRequest true "Target room"
// @Success 200 {object} models.UpdateBookingResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} map[string]interface{} "Not owner or room full"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Security BearerAuth
// @Router /api/v1/booking/{bookingId} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookingID := c.Param("bookingId")

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBooking(userCtx.UserID.String(), bookingID, req.RoomID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UpdateBookingResponse{BookingID: booking.ID})
}
