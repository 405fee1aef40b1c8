package handlers

import (
	"context"
	"net/http"

	"parenthub/middleware"
	"parenthub/models"
	"parenthub/services/history"

	"github.com/gin-gonic/gin"
)

// ListHistoryHandler returns the caller's transaction history.
func ListHistoryHandler(svc *history.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.ListByUser(middleware.UserID(c)))
	}
}

type reviewRequest struct {
	Stars int `json:"stars" binding:"required"`
}

// SubmitReviewHandler rates the resource behind a history record.
func SubmitReviewHandler(svc *history.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := svc.SubmitReview(middleware.UserID(c), c.Param("id"), req.Stars); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "reviewed"})
	}
}

// WatchHistoryHandler streams history snapshots over a websocket.
func WatchHistoryHandler(svc *history.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		streamSnapshots(c, func(ctx context.Context) (<-chan []models.HistoryTransaction, error) {
			return svc.History.Watch(ctx, userID)
		})
	}
}
