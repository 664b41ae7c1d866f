package controllers

import (
	"net/http"

	"learnhub/services"
	"learnhub/store"
	"learnhub/structs"
	"learnhub/utils"

	"github.com/gin-gonic/gin"
)

// SignUp registers a new user. A valid referral code links the new user to
// the inviter and grants both sides their reward.
func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	svc := services.GetGamificationService()
	user, rewardGranted, err := svc.Register(ctx.Request.Context(), request.Name, request.Email, passwordHash, request.ReferralCode)
	if err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Failed to sign up", "message": err.Error()})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":       "Sign-up successful",
		"accessToken":   token,
		"user":          user,
		"rewardGranted": rewardGranted,
	})
}

// Login checks credentials, issues a JWT and processes the daily login
// bonus. The streak engine is idempotent, so repeated logins on the same
// calendar day earn nothing extra.
func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	svc := services.GetGamificationService()
	user, err := svc.GetUserByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		if err == store.ErrNotFound {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		}
		return
	}
	if !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	updated, xpEarned, err := svc.ProcessDailyLogin(ctx.Request.Context(), user.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process login"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Sign-in successful",
		"accessToken": token,
		"user":        updated,
		"xpEarned":    xpEarned,
		"streak":      updated.Streak,
	})
}
