package controllers

import (
	"net/http"

	"learnhub/services"

	"github.com/gin-gonic/gin"
)

// GetBadgeCatalog returns the static badge catalog for display
func GetBadgeCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"badges": services.BadgeCatalog()})
}
