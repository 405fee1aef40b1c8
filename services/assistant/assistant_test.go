package assistant

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

type memContextStore struct {
	contexts map[string]*models.AssistantContext
}

func newMemContextStore() *memContextStore {
	return &memContextStore{contexts: map[string]*models.AssistantContext{}}
}

func (m *memContextStore) Get(userID string) (*models.AssistantContext, error) {
	if ctx, ok := m.contexts[userID]; ok {
		return ctx, nil
	}
	return &models.AssistantContext{}, nil
}

func (m *memContextStore) Save(userID string, ctx *models.AssistantContext) error {
	m.contexts[userID] = ctx
	return nil
}

type scriptedReplies struct {
	reply      string
	err        error
	lastPrompt string
	lastTurns  []models.ChatTurn
}

func (s *scriptedReplies) GenerateReply(_ context.Context, systemPrompt string, history []models.ChatTurn) (string, error) {
	s.lastPrompt = systemPrompt
	s.lastTurns = history
	return s.reply, s.err
}

func newAssistant(reply string, err error) (*Service, *memChatRepo, *memContextStore, *scriptedReplies) {
	repo := newMemChatRepo()
	store := newMemContextStore()
	replies := &scriptedReplies{reply: reply, err: err}
	return &Service{Messages: repo, Context: store, Replies: replies}, repo, store, replies
}

func TestEnsureWelcome_SeedsEmptyThreadOnce(t *testing.T) {
	svc, repo, _, _ := newAssistant("", nil)

	require.NoError(t, svc.EnsureWelcome("user-1"))
	require.NoError(t, svc.EnsureWelcome("user-1"))

	thread := repo.rooms[roomID("user-1")]
	require.Len(t, thread, 1)
	assert.Equal(t, welcomeMessage, thread[0].Text)
	assert.False(t, thread[0].FromUser)
}

func TestAsk_StoresQuestionAndReply(t *testing.T) {
	svc, repo, store, replies := newAssistant("Coba kompres hangat dulu ya.", nil)

	reply, err := svc.Ask(context.Background(), "user-1", "Bayi demam, harus bagaimana?")
	require.NoError(t, err)
	assert.Equal(t, "Coba kompres hangat dulu ya.", reply)

	thread := repo.rooms[roomID("user-1")]
	require.Len(t, thread, 2)
	assert.True(t, thread[0].FromUser)
	assert.False(t, thread[1].FromUser)

	assert.Contains(t, replies.lastPrompt, "Little AI")
	require.Len(t, store.contexts["user-1"].Turns, 2)
	assert.Equal(t, "assistant", store.contexts["user-1"].Turns[1].Role)
}

func TestAsk_GenerationFailureStoresApology(t *testing.T) {
	svc, repo, store, _ := newAssistant("", errors.New("rate limited"))

	reply, err := svc.Ask(context.Background(), "user-1", "Halo?")
	require.NoError(t, err)
	assert.Equal(t, errorMessage, reply)

	thread := repo.rooms[roomID("user-1")]
	require.Len(t, thread, 2)
	assert.Equal(t, errorMessage, thread[1].Text)

	// A failed generation is not remembered as an assistant turn.
	assert.Empty(t, store.contexts["user-1"])
}

func TestAsk_ContextCarriesAcrossQuestions(t *testing.T) {
	svc, _, _, replies := newAssistant("Baik.", nil)

	_, err := svc.Ask(context.Background(), "user-1", "Pertanyaan pertama")
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), "user-1", "Pertanyaan kedua")
	require.NoError(t, err)

	// Second call sees: q1, a1, q2.
	require.Len(t, replies.lastTurns, 3)
	assert.Equal(t, "Pertanyaan kedua", replies.lastTurns[2].Content)
}
