package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cabadmin/models"
)

// Vehicle management passthrough. The extra check-registration endpoint backs
// the form's uniqueness validation before save.

func ListVehicles(c *gin.Context) {
	vendorID, _ := strconv.Atoi(c.Query("vendorId"))
	driverID, _ := strconv.Atoi(c.Query("driverId"))
	vehicles, err := Backend.FetchAdminVehicles(upstreamCtx(c), vendorID, driverID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

func GetVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}
	vehicle, err := Backend.FetchAdminVehicle(upstreamCtx(c), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func CheckRegistration(c *gin.Context) {
	registrationNumber := c.Query("registrationNumber")
	if registrationNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registrationNumber is required"})
		return
	}
	excludeID, _ := strconv.Atoi(c.Query("excludeId"))
	check, err := Backend.CheckRegistration(upstreamCtx(c), registrationNumber, excludeID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

func AddVehicle(c *gin.Context) {
	var vehicle models.AdminVehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := Backend.AddVehicle(upstreamCtx(c), vehicle)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": created})
}

func UpdateVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}
	var vehicle models.AdminVehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := Backend.UpdateVehicle(upstreamCtx(c), id, vehicle)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": updated})
}

func DeleteVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle id"})
		return
	}
	if err := Backend.DeleteVehicle(upstreamCtx(c), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
