package handlers

import (
	"net/http"

	"parenthub/middleware"
	"parenthub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		profile, err := svc.GetUserByID(userID)
		if err != nil {
			getLogger(c).Error("failed to get profile", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler updates the authenticated user's profile fields.
func UpdateProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var req user.ProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.UpdateProfile(userID, req)
		if err != nil {
			getLogger(c).Error("failed to update profile", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
