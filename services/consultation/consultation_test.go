package consultation

import (
	"context"
	"errors"
	"testing"

	"parenthub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memChatRepo struct {
	rooms map[string][]models.ChatMessage
}

func newMemChatRepo() *memChatRepo {
	return &memChatRepo{rooms: map[string][]models.ChatMessage{}}
}

func (m *memChatRepo) Append(msg *models.ChatMessage) error {
	m.rooms[msg.RoomID] = append(m.rooms[msg.RoomID], *msg)
	return nil
}

func (m *memChatRepo) GetByRoom(roomID string) ([]models.ChatMessage, error) {
	return m.rooms[roomID], nil
}

func (m *memChatRepo) Watch(context.Context, string) (<-chan []models.ChatMessage, error) {
	return nil, errors.New("not supported")
}

type stubDoctorRepo struct {
	doctor *models.Doctor
}

func (s *stubDoctorRepo) GetByID(string) (*models.Doctor, error) {
	if s.doctor == nil {
		return nil, errors.New("doctor not found")
	}
	return s.doctor, nil
}
func (s *stubDoctorRepo) GetAll() ([]models.Doctor, error)   { return nil, nil }
func (s *stubDoctorRepo) IncrementPatientCount(string) error { return nil }

type scriptedReplies struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *scriptedReplies) GenerateReply(_ context.Context, systemPrompt string, _ []models.ChatTurn) (string, error) {
	s.lastPrompt = systemPrompt
	return s.reply, s.err
}

func TestSendMessage_StoresPatientMessage(t *testing.T) {
	repo := newMemChatRepo()
	svc := &Service{Messages: repo, Doctors: &stubDoctorRepo{}, Replies: &scriptedReplies{}}

	msg, err := svc.SendMessage("user-1", "doc-1", "Anak saya batuk terus.")
	require.NoError(t, err)
	assert.True(t, msg.FromUser)
	assert.Equal(t, "user-1_doc-1", msg.RoomID)

	_, err = svc.SendMessage("user-1", "doc-1", "")
	assert.Error(t, err)
}

func TestAutoReply_AnswersAsTheDoctor(t *testing.T) {
	repo := newMemChatRepo()
	replies := &scriptedReplies{reply: "Perbanyak cairan hangat dulu ya, Bu."}
	svc := &Service{
		Messages: repo,
		Doctors:  &stubDoctorRepo{doctor: &models.Doctor{ID: "doc-1", Name: "dr. Sari", Specialization: "Anak"}},
		Replies:  replies,
	}

	svc.autoReply("user-1", "doc-1", "Anak saya batuk terus.")

	room := repo.rooms["user-1_doc-1"]
	require.Len(t, room, 1)
	assert.False(t, room[0].FromUser)
	assert.Equal(t, "Perbanyak cairan hangat dulu ya, Bu.", room[0].Text)

	assert.Contains(t, replies.lastPrompt, "dr. Sari")
	assert.Contains(t, replies.lastPrompt, "Anak")
}

func TestAutoReply_FailuresAreSwallowed(t *testing.T) {
	repo := newMemChatRepo()
	svc := &Service{
		Messages: repo,
		Doctors:  &stubDoctorRepo{doctor: &models.Doctor{ID: "doc-1", Name: "dr. Sari", Specialization: "Anak"}},
		Replies:  &scriptedReplies{err: errors.New("rate limited")},
	}

	svc.autoReply("user-1", "doc-1", "Halo dok")
	assert.Empty(t, repo.rooms["user-1_doc-1"])
}
