package user

import (
	"context"
	"errors"
	"testing"

	"parenthub/models"
	"parenthub/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(u *models.User) error { return f.Create(u) }

func (f *fakeUserRepo) UpdateFields(id string, fields map[string]interface{}) error {
	u, ok := f.byID[id]
	if !ok {
		return errors.New("user not found")
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if phone, ok := fields["phone"].(string); ok {
		u.Phone = phone
	}
	return nil
}

func (f *fakeUserRepo) ProcessTransaction(string, float64, int64) error { return nil }

type memSessionStore struct {
	sessions map[string]utils.AuthSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]utils.AuthSession{}}
}

func (m *memSessionStore) Save(s utils.AuthSession) error {
	m.sessions[s.UserID] = s
	return nil
}

func (m *memSessionStore) Get(userID string) (*utils.AuthSession, error) {
	s, ok := m.sessions[userID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memSessionStore) Delete(userID string) error {
	delete(m.sessions, userID)
	return nil
}

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func newService() (*DefaultUserService, *fakeUserRepo, *memSessionStore) {
	repo := newFakeUserRepo()
	sessions := newMemSessionStore()
	return &DefaultUserService{Repo: repo, Sessions: sessions}, repo, sessions
}

func TestRegister_CreatesUserAndSession(t *testing.T) {
	svc, repo, sessions := newService()

	resp, err := svc.Register("Budi", "budi@example.com", "rahasia-sekali")
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.NotEmpty(t, resp.Token)

	stored := repo.byEmail["budi@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "user", stored.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia-sekali")))
	assert.Zero(t, stored.Balance)

	session := sessions.sessions[resp.ID]
	assert.Equal(t, utils.HashToken(resp.Token), session.TokenHash)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Register("Budi", "budi@example.com", "rahasia-sekali")
	require.NoError(t, err)

	_, err = svc.Register("Budi Lain", "budi@example.com", "rahasia-lain")
	assert.EqualError(t, err, "a user with this email already exists")
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newService()
	resp, err := svc.Register("Budi", "budi@example.com", "rahasia-sekali")
	require.NoError(t, err)

	_, err = svc.Authenticate("budi@example.com", "salah")
	assert.EqualError(t, err, "invalid email or password")

	_, err = svc.Authenticate("tidak-ada@example.com", "rahasia-sekali")
	assert.EqualError(t, err, "invalid email or password")

	authed, err := svc.Authenticate("budi@example.com", "rahasia-sekali")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, authed.ID)

	sub, err := utils.ExtractIDFromToken(authed.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sub)
}

func TestGoogleSignIn_CreatesUserOnFirstSignIn(t *testing.T) {
	svc, repo, _ := newService()
	svc.Verifier = &fakeVerifier{token: &auth.Token{
		UID:    "google-uid",
		Claims: map[string]interface{}{"email": "sari@example.com", "name": "Sari", "picture": "https://img"},
	}}

	resp, err := svc.GoogleSignIn("some-id-token")
	require.NoError(t, err)

	created := repo.byEmail["sari@example.com"]
	require.NotNil(t, created)
	assert.Equal(t, "Sari", created.Name)
	assert.Equal(t, "https://img", created.ImageURL)
	assert.Empty(t, created.PasswordHash)
	assert.Equal(t, created.ID, resp.ID)

	// Second sign-in reuses the existing record.
	again, err := svc.GoogleSignIn("some-id-token")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
}

func TestSignOut_RevokesSession(t *testing.T) {
	svc, _, sessions := newService()
	resp, err := svc.Register("Budi", "budi@example.com", "rahasia-sekali")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(resp.ID))
	session, err := sessions.Get(resp.ID)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestUpdateProfile_OnlyTouchesGivenFields(t *testing.T) {
	svc, repo, _ := newService()
	resp, err := svc.Register("Budi", "budi@example.com", "rahasia-sekali")
	require.NoError(t, err)

	name := "Budi Santoso"
	updated, err := svc.UpdateProfile(resp.ID, ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", updated.Name)
	assert.Equal(t, "budi@example.com", repo.byID[resp.ID].Email)
}
