package userRepo

import "parenthub/models"

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(id string, fields map[string]interface{}) error

	// ProcessTransaction atomically debits amount from the user's balance and
	// credits pointsEarned, inside a single transaction. It fails without any
	// write when the balance is below amount.
	ProcessTransaction(id string, amount float64, pointsEarned int64) error
}
