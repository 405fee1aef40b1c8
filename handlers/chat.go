package handlers

import (
	"context"
	"net/http"

	"parenthub/middleware"
	"parenthub/models"
	"parenthub/services/assistant"
	"parenthub/services/consultation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsultationRoomHandler returns the messages of one consultation room.
func ConsultationRoomHandler(svc *consultation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		messages, err := svc.Room(middleware.UserID(c), c.Param("doctorId"))
		if err != nil {
			getLogger(c).Error("failed to load consultation room", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

type sendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ConsultationSendHandler stores a patient message; the doctor's reply
// arrives on the room stream.
func ConsultationSendHandler(svc *consultation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		message, err := svc.SendMessage(middleware.UserID(c), c.Param("doctorId"), req.Text)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, message)
	}
}

// WatchConsultationHandler streams room snapshots over a websocket.
func WatchConsultationHandler(svc *consultation.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := consultation.RoomID(middleware.UserID(c), c.Param("doctorId"))
		streamSnapshots(c, func(ctx context.Context) (<-chan []models.ChatMessage, error) {
			return svc.Messages.Watch(ctx, roomID)
		})
	}
}

// AssistantThreadHandler returns the caller's assistant thread, greeting
// included on first open.
func AssistantThreadHandler(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)
		if err := svc.EnsureWelcome(userID); err != nil {
			getLogger(c).Error("failed to seed assistant thread", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assistant"})
			return
		}

		thread, err := svc.Thread(userID)
		if err != nil {
			getLogger(c).Error("failed to load assistant thread", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assistant"})
			return
		}
		c.JSON(http.StatusOK, thread)
	}
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// AssistantAskHandler answers one question in the caller's assistant thread.
func AssistantAskHandler(svc *assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		reply, err := svc.Ask(c.Request.Context(), middleware.UserID(c), req.Question)
		if err != nil {
			getLogger(c).Error("assistant ask failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to answer, please try again"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}
