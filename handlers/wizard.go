package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cabadmin/backend"
	"cabadmin/middleware"
	"cabadmin/models"
	"cabadmin/services/booking"
	"cabadmin/utils"
)

// WizardService is wired in main after configuration is loaded.
var WizardService booking.WizardService

// upstreamCtx attaches the admin's bearer token so every backend call made on
// behalf of this request forwards it.
func upstreamCtx(c *gin.Context) context.Context {
	return backend.WithToken(c.Request.Context(), c.GetString(middleware.ContextTokenKey))
}

// respondWizardError translates service errors into HTTP responses.
func respondWizardError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		loadErr       *booking.LoadError
		submitErr     *booking.SubmissionError
		stateErr      *booking.InvalidTransitionError
	)
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "wizard session not found or expired"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &loadErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": loadErr.Message})
	case errors.As(err, &submitErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": submitErr.Error(), "step": submitErr.Step})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": stateErr.Error()})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

// StartCreateSession opens a fresh create-flow wizard session.
func StartCreateSession(c *gin.Context) {
	session, err := WizardService.StartCreate(upstreamCtx(c))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// StartEditSession opens a wizard session prefilled from an existing booking.
func StartEditSession(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	session, err := WizardService.StartEdit(upstreamCtx(c), bookingID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns the current state of a wizard session.
func GetSession(c *gin.Context) {
	session, err := WizardService.Session(upstreamCtx(c), c.Param("id"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetLocationInput records typed text into a trip location field and returns
// the city suggestions for it.
func SetLocationInput(c *gin.Context) {
	var input struct {
		Field string `json:"field"`
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, suggestions, err := WizardService.SetLocationInput(upstreamCtx(c), c.Param("id"), input.Field, input.Input)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "suggestions": suggestions})
}

// SelectCity resolves a trip location field to a chosen city.
func SelectCity(c *gin.Context) {
	var input struct {
		Field  string `json:"field"`
		CityID int    `json:"cityId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := WizardService.SelectCity(upstreamCtx(c), c.Param("id"), input.Field, input.CityID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitDetails validates the trip details and advances to vehicle selection.
func SubmitDetails(c *gin.Context) {
	var input struct {
		TripTypeID int    `json:"tripTypeId"`
		PickupDate string `json:"pickupDate"`
		PickupTime string `json:"pickupTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := WizardService.SubmitDetails(upstreamCtx(c), c.Param("id"), input.TripTypeID, input.PickupDate, input.PickupTime)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectVehicle records the chosen vehicle for the session.
func SelectVehicle(c *gin.Context) {
	var input struct {
		VehicleID int `json:"vehicleId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := WizardService.SelectVehicle(upstreamCtx(c), c.Param("id"), input.VehicleID)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CheckContactEmail autofills contact fields from a matching rider account.
func CheckContactEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := WizardService.CheckContactEmail(upstreamCtx(c), c.Param("id"), input.Email)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitContact runs the submission chain and moves the session into review.
func SubmitContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, summary, err := WizardService.SubmitContact(upstreamCtx(c), c.Param("id"), form)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "confirmation": summary})
}

// ConfirmSession acknowledges the review step and closes the session.
func ConfirmSession(c *gin.Context) {
	if err := WizardService.Confirm(upstreamCtx(c), c.Param("id")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// CancelSession discards a wizard session without persisting anything.
func CancelSession(c *gin.Context) {
	if err := WizardService.Cancel(upstreamCtx(c), c.Param("id")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
