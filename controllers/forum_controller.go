package controllers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"learnhub/db"
	"learnhub/models"
	"learnhub/services"
	"learnhub/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTopic creates a forum topic, then evaluates the post-category
// badges for the author.
func CreateTopic(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	var request structs.CreateTopicRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc := services.GetGamificationService()
	user, err := svc.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch user"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	topic := models.ForumTopic{
		ID:         primitive.NewObjectID(),
		AuthorID:   userID,
		AuthorName: user.DisplayName,
		Title:      request.Title,
		Body:       request.Body,
		Tags:       request.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := db.GetCollection("forum_topics").InsertOne(ctx, topic); err != nil {
		log.Printf("Failed to create topic: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}

	badge, err := svc.EvaluateBadges(c.Request.Context(), userID, models.CategoryPost)
	if err != nil {
		log.Printf("Badge evaluation failed: %v", err)
	}

	response := gin.H{"topic": topic, "message": "Topic created successfully"}
	if badge != nil {
		response["unlockedBadge"] = badge
	}
	c.JSON(http.StatusCreated, response)
}

// GetTopics returns paginated forum topics, newest first
func GetTopics(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	skip := (page - 1) * limit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := db.GetCollection("forum_topics").Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topics"})
		return
	}
	defer cursor.Close(ctx)

	var topics []models.ForumTopic
	if err := cursor.All(ctx, &topics); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode topics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics, "page": page})
}

// CreateComment adds a comment to a topic. The comment category currently
// has no badge bound to it, so the evaluation returns nothing, but the hook
// stays in place for future catalog entries.
func CreateComment(c *gin.Context) {
	userID := c.MustGet("userID").(primitive.ObjectID)

	topicID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	var request structs.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc := services.GetGamificationService()
	user, err := svc.GetUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to fetch user"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	comment := models.ForumComment{
		ID:         primitive.NewObjectID(),
		TopicID:    topicID,
		AuthorID:   userID,
		AuthorName: user.DisplayName,
		Body:       request.Body,
		CreatedAt:  time.Now(),
	}

	if _, err := db.GetCollection("forum_comments").InsertOne(ctx, comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	db.GetCollection("forum_topics").UpdateOne(ctx,
		bson.M{"_id": topicID},
		bson.M{"$inc": bson.M{"commentCount": 1}, "$set": bson.M{"updatedAt": time.Now()}})

	if _, err := svc.EvaluateBadges(c.Request.Context(), userID, models.CategoryComment); err != nil {
		log.Printf("Badge evaluation failed: %v", err)
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment, "message": "Comment created successfully"})
}

// GetComments lists the comments on a topic
func GetComments(c *gin.Context) {
	topicID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := db.GetCollection("forum_comments").Find(ctx, bson.M{"topicId": topicID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}
	defer cursor.Close(ctx)

	var comments []models.ForumComment
	if err := cursor.All(ctx, &comments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}
