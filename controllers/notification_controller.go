package controllers

import (
	"net/http"

	"learnhub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetNotifications lists the newest notifications for the user
func GetNotifications(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	notifications, err := services.GetGamificationService().Notifications(c.Request.Context(), userID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
