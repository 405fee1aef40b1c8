// models/user.go
package models

import "time"

// User represents an app user. Balance only ever decreases through checkout,
// points only ever increase.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Username     string    `bson:"username" json:"username"`
	Phone        string    `bson:"phone" json:"phone"`
	ImageURL     string    `bson:"imageUrl" json:"imageUrl"`
	Role         string    `bson:"role" json:"role"`
	Balance      float64   `bson:"balance" json:"balance"`
	Points       int64     `bson:"points" json:"points"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
