package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"health": "healthy (data)"})
}
