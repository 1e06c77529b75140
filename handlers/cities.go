package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cabadmin/models"
)

// City management passthrough, same contract as the drivers screen.

func ListCities(c *gin.Context) {
	cities, err := Backend.FetchAdminCities(upstreamCtx(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func AddCity(c *gin.Context) {
	var city models.AdminCity
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := Backend.AddCity(upstreamCtx(c), city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"city": created})
}

func UpdateCity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid city id"})
		return
	}
	var city models.AdminCity
	if err := c.ShouldBindJSON(&city); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := Backend.UpdateCity(upstreamCtx(c), id, city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": updated})
}

func DeleteCity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid city id"})
		return
	}
	if err := Backend.DeleteCity(upstreamCtx(c), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
