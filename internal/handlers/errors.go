package handlers

import (
	"net/http"

	"github.com/eventstay/hotel-booking-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// writeError maps a service failure to an HTTP response. Expected failure
// kinds translate directly; infrastructure failures become 503 and are
// never conflated with 404.
func writeError(c *gin.Context, err error) {
	kind, ok := apperrors.KindOf(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch kind {
	case apperrors.KindPaymentRequired:
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case apperrors.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.KindUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
