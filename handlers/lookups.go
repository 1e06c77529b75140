package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/backend"
	"cabadmin/services/booking"
)

// Backend is the shared REST client, wired in main.
var Backend *backend.Client

// GetLookups fetches all three reference tables in one round trip.
func GetLookups(c *gin.Context) {
	lookups, err := booking.LoadLookups(upstreamCtx(c), Backend)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cities":    lookups.Cities,
		"tripTypes": lookups.TripTypes,
		"vehicles":  lookups.Vehicles,
	})
}
