package handlers

import (
	"net/http"

	"github.com/eventstay/hotel-booking-backend/internal/database"
	"github.com/gin-gonic/gin"
)

// TicketHandler serves ticket type listings.
type TicketHandler struct {
	ticketRepo *database.TicketRepository
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketRepo *database.TicketRepository) *TicketHandler {
	return &TicketHandler{ticketRepo: ticketRepo}
}

// GetTicketTypes lists all available ticket types.
// @Summary List ticket types
// @Produce json
// @Success 200 {array} models.TicketType
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /api/v1/ticket-types [get]
func (h *TicketHandler) GetTicketTypes(c *gin.Context) {
	types, err := h.ticketRepo.ListTicketTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ticket types"})
		return
	}

	c.JSON(http.StatusOK, types)
}
