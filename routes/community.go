package routes

import (
	"learnhub/controllers"

	"github.com/gin-gonic/gin"
)

func CreateTopicRouteHandler(c *gin.Context) {
	controllers.CreateTopic(c)
}

func GetTopicsRouteHandler(c *gin.Context) {
	controllers.GetTopics(c)
}

func ToggleLikeRouteHandler(c *gin.Context) {
	controllers.ToggleLike(c)
}

func CreateCommentRouteHandler(c *gin.Context) {
	controllers.CreateComment(c)
}

func GetCommentsRouteHandler(c *gin.Context) {
	controllers.GetComments(c)
}
