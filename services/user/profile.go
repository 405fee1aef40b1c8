package user

import (
	"fmt"
	"time"

	"parenthub/models"
	"parenthub/utils"

	"go.uber.org/zap"
)

// ProfileUpdate carries the profile fields a user may change. Nil pointers
// leave the stored value as is.
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return userRec, nil
}

// UpdateProfile applies the given field updates and returns the fresh record.
// Balance, points and credentials are never updatable through this path.
func (s *DefaultUserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.ImageURL != nil {
		fields["imageUrl"] = *update.ImageURL
	}
	if len(fields) == 0 {
		return s.GetUserByID(userID)
	}
	fields["updatedAt"] = time.Now()

	if err := s.Repo.UpdateFields(userID, fields); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update fields",
			zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetUserByID(userID)
}
