package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListBookings returns the booking collection joined for display.
func ListBookings(c *gin.Context) {
	rows, err := WizardService.ListBookings(upstreamCtx(c))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows})
}

// DeleteBooking removes a booking; any wizard session editing it is reset.
func DeleteBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	if err := WizardService.DeleteBooking(upstreamCtx(c), bookingID); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
