package controllers

import (
	"log"
	"net/http"

	"learnhub/db"
	"learnhub/models"
	"learnhub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToggleLike toggles a like on a forum topic. Membership lives in a Redis
// set per topic; the running count is mirrored onto the topic document so
// the helpful_hand badge predicate can aggregate it. Liking a topic
// evaluates the like-category badges for the topic's author, not the liker.
func ToggleLike(c *gin.Context) {
	if db.RedisClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Redis not available"})
		return
	}

	userID := c.MustGet("userID").(primitive.ObjectID)

	topicID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic ID"})
		return
	}

	ctx := c.Request.Context()
	topics := db.GetCollection("forum_topics")

	var topic models.ForumTopic
	if err := topics.FindOne(ctx, bson.M{"_id": topicID}).Decode(&topic); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	key := "topic:" + topicID.Hex() + ":likers"
	member := userID.Hex()

	alreadyLiked, err := db.RedisClient.SIsMember(ctx, key, member).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like state"})
		return
	}

	if alreadyLiked {
		if _, err := db.RedisClient.SRem(ctx, key, member).Result(); err == nil {
			topics.UpdateOne(ctx, bson.M{"_id": topicID}, bson.M{"$inc": bson.M{"likeCount": -1}})
		}
	} else {
		if _, err := db.RedisClient.SAdd(ctx, key, member).Result(); err == nil {
			topics.UpdateOne(ctx, bson.M{"_id": topicID}, bson.M{"$inc": bson.M{"likeCount": 1}})
		}
	}

	if err := topics.FindOne(ctx, bson.M{"_id": topicID}).Decode(&topic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch topic"})
		return
	}

	response := gin.H{"liked": !alreadyLiked, "count": topic.LikeCount}

	if !alreadyLiked {
		badge, err := services.GetGamificationService().EvaluateBadges(ctx, topic.AuthorID, models.CategoryLike)
		if err != nil {
			log.Printf("Badge evaluation failed: %v", err)
		} else if badge != nil {
			response["authorUnlockedBadge"] = badge
		}
	}

	c.JSON(http.StatusOK, response)
}
