package routes

import (
	"learnhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetBadgeCatalogRouteHandler(c *gin.Context) {
	controllers.GetBadgeCatalog(c)
}

func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}

func GetNotificationsRouteHandler(c *gin.Context) {
	controllers.GetNotifications(c)
}
