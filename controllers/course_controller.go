package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"learnhub/db"
	"learnhub/models"
	"learnhub/services"
	"learnhub/structs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultLessonXP = 50

// GetCourses lists the course catalog
func GetCourses(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection("courses").Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode courses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "total": len(courses)})
}

// GetCourse returns a single course with its lessons
func GetCourse(c *gin.Context) {
	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	if err := db.GetCollection("courses").FindOne(ctx, bson.M{"_id": courseID}).Decode(&course); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

// CompleteLesson marks a lesson done, grants its XP once and evaluates the
// time-of-day badge. The XP grant and the badge evaluation run sequentially
// so their read-modify-write windows never overlap.
func CompleteLesson(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}
	lessonID := c.Param("lessonId")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	if err := db.GetCollection("courses").FindOne(ctx, bson.M{"_id": courseID}).Decode(&course); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	lesson := findLesson(course, lessonID)
	if lesson == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
		return
	}

	completions := db.GetCollection("lesson_completions")
	filter := bson.M{"userId": userID, "courseId": courseID, "lessonId": lessonID}
	var existing models.LessonCompletion
	if err := completions.FindOne(ctx, filter).Decode(&existing); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Lesson already completed", "xpEarned": 0})
		return
	} else if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check completion"})
		return
	}

	if _, err := completions.InsertOne(ctx, models.LessonCompletion{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		CourseID:    courseID,
		LessonID:    lessonID,
		CompletedAt: time.Now(),
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record completion"})
		return
	}

	xp := lesson.XPReward
	if xp <= 0 {
		xp = defaultLessonXP
	}

	svc := services.GetGamificationService()
	user, err := svc.GrantXP(c.Request.Context(), userID, xp, "Completed lesson: "+lesson.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant XP"})
		return
	}

	badge, err := svc.EvaluateBadges(c.Request.Context(), userID, models.CategoryTime)
	if err != nil {
		log.Printf("Badge evaluation failed: %v", err)
	}

	certificate := maybeIssueCertificate(ctx, userID, course)

	response := gin.H{"message": "Lesson completed", "xpEarned": xp, "user": user}
	if badge != nil {
		response["unlockedBadge"] = badge
	}
	if certificate != nil {
		response["certificate"] = certificate
	}
	c.JSON(http.StatusOK, response)
}

// SubmitQuiz scores a quiz lesson, grants XP per correct answer and attaches
// a generated explanation for the first missed question when available.
func SubmitQuiz(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	courseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}
	lessonID := c.Param("lessonId")

	var request structs.SubmitQuizRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	if err := db.GetCollection("courses").FindOne(ctx, bson.M{"_id": courseID}).Decode(&course); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	lesson := findLesson(course, lessonID)
	if lesson == nil || lesson.Type != "quiz" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	if len(request.Answers) != len(lesson.Questions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Answer count does not match question count"})
		return
	}

	correct := 0
	feedback := ""
	for i, question := range lesson.Questions {
		if request.Answers[i] == question.Answer {
			correct++
			continue
		}
		if feedback == "" {
			if explanation, err := services.ExplainQuizAnswer(c.Request.Context(), question, request.Answers[i]); err == nil {
				feedback = explanation
			}
		}
	}

	xp := correct * 10
	svc := services.GetGamificationService()
	user, err := svc.GrantQuizXP(c.Request.Context(), userID, xp,
		fmt.Sprintf("Quiz %s: %d/%d correct", lesson.Title, correct, len(lesson.Questions)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant XP"})
		return
	}

	badge, err := svc.EvaluateBadges(c.Request.Context(), userID, models.CategoryTime)
	if err != nil {
		log.Printf("Badge evaluation failed: %v", err)
	}

	response := gin.H{
		"correct":  correct,
		"total":    len(lesson.Questions),
		"xpEarned": xp,
		"user":     user,
	}
	if feedback != "" {
		response["feedback"] = feedback
	}
	if badge != nil {
		response["unlockedBadge"] = badge
	}
	c.JSON(http.StatusOK, response)
}

// GetCertificates lists the certificates earned by the user
func GetCertificates(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection("certificates").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
		return
	}
	defer cursor.Close(ctx)

	var certificates []models.Certificate
	if err := cursor.All(ctx, &certificates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode certificates"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"certificates": certificates})
}

func findLesson(course models.Course, lessonID string) *models.Lesson {
	for i := range course.Lessons {
		if course.Lessons[i].ID == lessonID {
			return &course.Lessons[i]
		}
	}
	return nil
}

// maybeIssueCertificate issues a certificate once every lesson of the course
// is completed. Re-issuing is prevented by checking for an existing record.
func maybeIssueCertificate(ctx context.Context, userID primitive.ObjectID, course models.Course) *models.Certificate {
	completions := db.GetCollection("lesson_completions")
	count, err := completions.CountDocuments(ctx, bson.M{"userId": userID, "courseId": course.ID})
	if err != nil || int(count) < len(course.Lessons) {
		return nil
	}

	certificates := db.GetCollection("certificates")
	var existing models.Certificate
	if err := certificates.FindOne(ctx, bson.M{"userId": userID, "courseId": course.ID}).Decode(&existing); err == nil {
		return nil
	}

	certificate := models.Certificate{
		ID:       primitive.NewObjectID(),
		Serial:   uuid.NewString(),
		UserID:   userID,
		CourseID: course.ID,
		Course:   course.Title,
		IssuedAt: time.Now(),
	}
	if _, err := certificates.InsertOne(ctx, certificate); err != nil {
		log.Printf("Failed to issue certificate: %v", err)
		return nil
	}
	return &certificate
}
