package controllers

import (
	"net/http"

	"learnhub/leveling"
	"learnhub/services"
	"learnhub/store"
	"learnhub/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type badgeProgress struct {
	Badge    interface{} `json:"badge"`
	Unlocked bool        `json:"unlocked"`
	Progress int         `json:"progress"`
}

// GetProfile returns the user's gamification snapshot plus per-badge
// progress and the XP thresholds bracketing the current level, which the
// UI progress bar depends on.
func GetProfile(ctx *gin.Context) {
	userID := ctx.MustGet("userID").(primitive.ObjectID)

	svc := services.GetGamificationService()
	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if err == store.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	avatarURL := user.AvatarURL
	if avatarURL == "" {
		avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + user.DisplayName
	}

	var badges []badgeProgress
	for _, badge := range services.BadgeCatalog() {
		badges = append(badges, badgeProgress{
			Badge:    badge,
			Unlocked: user.HasBadge(badge.ID),
			Progress: svc.EstimateBadgeProgress(ctx.Request.Context(), user, badge.ID),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":               user,
		"avatarUrl":          avatarURL,
		"badges":             badges,
		"levelThreshold":     leveling.XPThresholdForLevel(user.Level),
		"nextLevelThreshold": leveling.XPThresholdForLevel(user.Level + 1),
	})
}

// EquipBadge sets the badge displayed next to the user's name. An empty
// badgeId unequips.
func EquipBadge(ctx *gin.Context) {
	userID := ctx.MustGet("userID").(primitive.ObjectID)

	var request structs.EquipBadgeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := services.GetGamificationService().EquipBadge(ctx.Request.Context(), userID, request.BadgeID)
	if err != nil {
		if err == store.ErrNotFound {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

// GetActivityLog returns the newest slice of the user's activity log.
func GetActivityLog(ctx *gin.Context) {
	userID := ctx.MustGet("userID").(primitive.ObjectID)

	user, err := services.GetGamificationService().GetUser(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	logs := user.ActivityLogs
	if len(logs) > 50 {
		logs = logs[:50]
	}
	ctx.JSON(http.StatusOK, gin.H{"activityLogs": logs})
}
