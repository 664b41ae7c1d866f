package controllers

import (
	"net/http"
	"strconv"

	"learnhub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Learner is one leaderboard row.
type Learner struct {
	ID            string `json:"id"`
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	Streak        int    `json:"streak"`
	EquippedBadge string `json:"equippedBadge,omitempty"`
	AvatarURL     string `json:"avatarUrl"`
	CurrentUser   bool   `json:"currentUser,omitempty"`
}

// GetLeaderboard returns the top users ordered by XP
func GetLeaderboard(c *gin.Context) {
	currentUserID, _ := c.Get("userID")

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	users, err := services.GetGamificationService().Leaderboard(c.Request.Context(), int64(limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}

	var learners []Learner
	for i, user := range users {
		avatarURL := user.AvatarURL
		if avatarURL == "" {
			avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + user.DisplayName
		}

		isCurrentUser := false
		if id, ok := currentUserID.(primitive.ObjectID); ok {
			isCurrentUser = id == user.ID
		}

		learners = append(learners, Learner{
			ID:            user.ID.Hex(),
			Rank:          i + 1,
			Name:          user.DisplayName,
			XP:            user.XP,
			Level:         user.Level,
			Streak:        user.Streak,
			EquippedBadge: user.EquippedBadge,
			AvatarURL:     avatarURL,
			CurrentUser:   isCurrentUser,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"learners": learners,
		"total":    len(learners),
	})
}
