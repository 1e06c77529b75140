package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabadmin/services/booking"
	"cabadmin/services/places"
)

// PlacesService is wired in main.
var PlacesService *places.Autocompleter

// AddressSuggestions returns place suggestions for a contact address field.
// A response made stale by a newer keystroke is reported as 204 so the client
// never renders it.
func AddressSuggestions(c *gin.Context) {
	sessionID := c.Param("id")
	field := c.Query("field")
	input := c.Query("input")

	ctx := upstreamCtx(c)
	session, err := WizardService.Session(ctx, sessionID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	token, err := booking.PlaceSessionToken(session, field)
	if err != nil {
		respondWizardError(c, err)
		return
	}

	suggestions, err := PlacesService.Query(ctx, sessionID, field, input, token)
	if err != nil {
		if errors.Is(err, places.ErrSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
