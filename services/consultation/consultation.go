// Package consultation runs the chat rooms between a user and a booked doctor.
package consultation

import (
	"context"
	"fmt"
	"time"

	catalogRepo "parenthub/database/repository/catalog"
	chatRepo "parenthub/database/repository/chat"
	"parenthub/models"
	"parenthub/services/assistant"
	"parenthub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const doctorPromptFormat = `Kamu adalah seorang dokter profesional dengan spesialisasi %s bernama %s.
Jawablah pertanyaan pasien sesuai dengan bidang keahlianmu (%s).
Jawab dengan ramah, singkat, dan empatik.
Gunakan bahasa Indonesia yang formal namun mudah dimengerti.
Jangan memberikan diagnosis medis pasti, tapi berikan saran umum atau rekomendasi pemeriksaan lebih lanjut.
Jika ditanya resep obat, sarankan untuk konsultasi tatap muka.
Maksimal jawaban 3 kalimat.`

// Service persists consultation messages and answers on the doctor's behalf.
type Service struct {
	Messages chatRepo.ChatRepository
	Doctors  catalogRepo.DoctorRepository
	Replies  assistant.ReplyGenerator
}

// RoomID derives the chat room shared by a user and a doctor.
func RoomID(userID, doctorID string) string {
	return fmt.Sprintf("%s_%s", userID, doctorID)
}

// Room returns the room's messages, oldest first.
func (s *Service) Room(userID, doctorID string) ([]models.ChatMessage, error) {
	return s.Messages.GetByRoom(RoomID(userID, doctorID))
}

// SendMessage stores the patient's message and triggers the doctor's reply.
// The reply is generated and stored asynchronously; its failure never blocks
// or fails the send.
func (s *Service) SendMessage(userID, doctorID, text string) (*models.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("message must not be empty")
	}

	message := &models.ChatMessage{
		ID:        uuid.New().String(),
		RoomID:    RoomID(userID, doctorID),
		Text:      text,
		FromUser:  true,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Messages.Append(message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	go s.autoReply(userID, doctorID, text)
	return message, nil
}

// autoReply answers as the doctor, scoped to their specialization.
func (s *Service) autoReply(userID, doctorID, userMessage string) {
	logger := utils.GetLogger()

	doctor, err := s.Doctors.GetByID(doctorID)
	if err != nil {
		logger.Error("auto-reply: failed to load doctor",
			zap.String("doctorID", doctorID), zap.Error(err))
		return
	}

	prompt := fmt.Sprintf(doctorPromptFormat,
		doctor.Specialization, doctor.Name, doctor.Specialization)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	reply, err := s.Replies.GenerateReply(ctx, prompt, []models.ChatTurn{
		{Role: "user", Content: userMessage},
	})
	if err != nil {
		logger.Error("auto-reply: generation failed",
			zap.String("doctorID", doctorID), zap.Error(err))
		return
	}

	response := &models.ChatMessage{
		ID:        uuid.New().String(),
		RoomID:    RoomID(userID, doctorID),
		Text:      reply,
		FromUser:  false,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Messages.Append(response); err != nil {
		logger.Error("auto-reply: failed to store reply",
			zap.String("doctorID", doctorID), zap.Error(err))
	}
}
