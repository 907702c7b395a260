package handlers

import (
	"net/http"

	"github.com/eventstay/hotel-booking-backend/internal/middleware"
	"github.com/eventstay/hotel-booking-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// HotelHandler handles hotel catalog browsing.
type HotelHandler struct {
	hotelService *services.HotelService
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(hotelService *services.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// GetHotels lists hotels for a paying ticket holder.
// @Summary List hotels
// @Produce json
// @Success 200 {array} models.Hotel
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 402 {object} map[string]interface{} "Ticket not paid"
// @Failure 404 {object} map[string]interface{} "No ticket"
// @Security BearerAuth
// @Router /api/v1/hotels [get]
func (h *HotelHandler) GetHotels(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotels, err := h.hotelService.ListHotels(userCtx.UserID.String())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetHotelRooms returns a hotel with its rooms.
// @Summary Get hotel rooms
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} models.HotelWithRooms
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 402 {object} map[string]interface{} "Ticket not paid"
// @Failure 404 {object} map[string]interface{} "Hotel not found"
// @Security BearerAuth
// @Router /api/v1/hotels/{hotelId} [get]
func (h *HotelHandler) GetHotelRooms(c *gin.Context) {
	userCtx, exists := middleware.GetUserContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	hotelID := c.Param("hotelId")

	hotel, err := h.hotelService.GetHotelWithRooms(userCtx.UserID.String(), hotelID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hotel)
}
