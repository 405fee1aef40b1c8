package user

import (
	"context"

	userRepo "parenthub/database/repository/user"
	"parenthub/models"

	"firebase.google.com/go/v4/auth"
)

// AuthResponse contains the authenticated user's ID and the JWT token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// IDTokenVerifier verifies a Google sign-in ID token. Satisfied by the
// Firebase auth client.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// UserService defines business logic for user operations.
type UserService interface {
	// Register validates the registration details, creates the user record
	// and signs the new user in.
	Register(name, email, password string) (*AuthResponse, error)
	// Authenticate verifies credentials and signs the user in.
	Authenticate(email, password string) (*AuthResponse, error)
	// GoogleSignIn verifies the Firebase ID token and signs in the matching
	// user, creating the record on first sign-in.
	GoogleSignIn(idToken string) (*AuthResponse, error)
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateProfile updates the mutable profile fields.
	UpdateProfile(userID string, fields ProfileUpdate) (*models.User, error)
	// SignOut revokes the user's session.
	SignOut(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions SessionStore
	Verifier IDTokenVerifier
}
