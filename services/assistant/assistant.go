// Package assistant runs the in-app parenting helper chat.
package assistant

import (
	"context"
	"fmt"
	"time"

	chatRepo "parenthub/database/repository/chat"
	"parenthub/models"
	"parenthub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const systemPrompt = `Kamu adalah asisten ramah bernama Little AI untuk orang tua dan bayi.
Balas ringkas, spesifik, dan actionable; hindari pengulangan.
Gunakan Bahasa Indonesia yang jelas.`

const (
	welcomeMessage = "Halo! Aku Little AI. Ada yang bisa kubantu terkait si kecil? 💗"
	errorMessage   = "Maaf, terjadi kesalahan jaringan. Coba lagi ya."
)

// Service persists the assistant thread and generates its replies. Each user
// has one thread, keyed by their user ID.
type Service struct {
	Messages chatRepo.ChatRepository
	Context  ContextStore
	Replies  ReplyGenerator
}

func roomID(userID string) string {
	return "assistant_" + userID
}

// EnsureWelcome seeds the thread with the greeting when it is empty.
func (s *Service) EnsureWelcome(userID string) error {
	messages, err := s.Messages.GetByRoom(roomID(userID))
	if err != nil {
		return fmt.Errorf("failed to load assistant thread: %w", err)
	}
	if len(messages) > 0 {
		return nil
	}
	return s.append(userID, welcomeMessage, false)
}

// Ask records the user's question, generates a reply from the rolling context
// and records it. A generation failure still answers: the canned network
// apology is stored so the thread never hangs on a question.
func (s *Service) Ask(ctx context.Context, userID, question string) (string, error) {
	if question == "" {
		return "", fmt.Errorf("question must not be empty")
	}
	if err := s.append(userID, question, true); err != nil {
		return "", err
	}

	assistantCtx, err := s.Context.Get(userID)
	if err != nil {
		utils.GetLogger().Warn("failed to load assistant context, starting fresh",
			zap.String("userID", userID), zap.Error(err))
		assistantCtx = &models.AssistantContext{}
	}
	assistantCtx.Turns = append(assistantCtx.Turns, models.ChatTurn{Role: "user", Content: question})

	reply, err := s.Replies.GenerateReply(ctx, systemPrompt, assistantCtx.Turns)
	if err != nil {
		utils.GetLogger().Error("assistant generation failed",
			zap.String("userID", userID), zap.Error(err))
		reply = errorMessage
	} else {
		assistantCtx.Turns = append(assistantCtx.Turns, models.ChatTurn{Role: "assistant", Content: reply})
		if err := s.Context.Save(userID, assistantCtx); err != nil {
			utils.GetLogger().Warn("failed to save assistant context",
				zap.String("userID", userID), zap.Error(err))
		}
	}

	if err := s.append(userID, reply, false); err != nil {
		return "", err
	}
	return reply, nil
}

// Thread returns the user's assistant messages, oldest first.
func (s *Service) Thread(userID string) ([]models.ChatMessage, error) {
	return s.Messages.GetByRoom(roomID(userID))
}

func (s *Service) append(userID, text string, fromUser bool) error {
	message := &models.ChatMessage{
		ID:        uuid.New().String(),
		RoomID:    roomID(userID),
		Text:      text,
		FromUser:  fromUser,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Messages.Append(message); err != nil {
		return fmt.Errorf("failed to store assistant message: %w", err)
	}
	return nil
}
