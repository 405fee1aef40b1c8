package user

import (
	"context"
	"fmt"
	"time"

	"parenthub/models"
	"parenthub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 7 * 24 * time.Hour

// Register validates the details, creates the user record and signs the new
// user in.
func (s *DefaultUserService) Register(name, email, password string) (*AuthResponse, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now()
	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Role:         "user",
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueSession(&userObj)
}

// Authenticate verifies credentials and signs the user in.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueSession(userRec)
}

// GoogleSignIn verifies the Firebase ID token, creating the user record on
// first sign-in.
func (s *DefaultUserService) GoogleSignIn(idToken string) (*AuthResponse, error) {
	if s.Verifier == nil {
		return nil, fmt.Errorf("google sign-in is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	token, err := s.Verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google id token is missing an email claim")
	}

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("GoogleSignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		now := time.Now()
		userRec = &models.User{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     email,
			ImageURL:  picture,
			Role:      "user",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Repo.Create(userRec); err != nil {
			utils.GetLogger().Error("GoogleSignIn: failed to create user", zap.Error(err))
			return nil, fmt.Errorf("authentication failed, please try again")
		}
	}

	return s.issueSession(userRec)
}

// SignOut revokes the user's session; the token stops working immediately.
func (s *DefaultUserService) SignOut(userID string) error {
	if err := s.Sessions.Delete(userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// issueSession generates a token and stores its hash, replacing any session
// the user already had.
func (s *DefaultUserService) issueSession(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("issueSession: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	session := utils.AuthSession{
		UserID:    userRec.ID,
		Email:     userRec.Email,
		TokenHash: utils.HashToken(token),
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	return &AuthResponse{ID: userRec.ID, Token: token}, nil
}
