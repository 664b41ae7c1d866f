package routes

import (
	"learnhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(c *gin.Context) {
	controllers.GetProfile(c)
}

func EquipBadgeRouteHandler(c *gin.Context) {
	controllers.EquipBadge(c)
}

func GetActivityLogRouteHandler(c *gin.Context) {
	controllers.GetActivityLog(c)
}
