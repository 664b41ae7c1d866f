package routes

import (
	"learnhub/controllers"

	"github.com/gin-gonic/gin"
)

func GetCoursesRouteHandler(c *gin.Context) {
	controllers.GetCourses(c)
}

func GetCourseRouteHandler(c *gin.Context) {
	controllers.GetCourse(c)
}

func CompleteLessonRouteHandler(c *gin.Context) {
	controllers.CompleteLesson(c)
}

func SubmitQuizRouteHandler(c *gin.Context) {
	controllers.SubmitQuiz(c)
}

func GetCertificatesRouteHandler(c *gin.Context) {
	controllers.GetCertificates(c)
}
