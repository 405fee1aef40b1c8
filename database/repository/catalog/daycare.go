package catalogRepo

import (
	"fmt"
	"time"

	"parenthub/database"
	"parenthub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DaycareRepository defines persistence operations for daycare facilities.
type DaycareRepository interface {
	GetByID(id string) (*models.Daycare, error)
	GetAll() ([]models.Daycare, error)
	IncrementBookingCount(id string) error
}

// MongoDaycareRepo implements DaycareRepository using MongoDB.
type MongoDaycareRepo struct {
	coll *mongo.Collection
}

func NewMongoDaycareRepo() DaycareRepository {
	coll := database.DB().Collection("daycares")
	repo := &MongoDaycareRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// GetByID retrieves a daycare by its unique ID.
func (r *MongoDaycareRepo) GetByID(id string) (*models.Daycare, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var daycare models.Daycare
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&daycare); err != nil {
		return nil, fmt.Errorf("failed to fetch daycare with id %s: %w", id, err)
	}
	return &daycare, nil
}

// GetAll retrieves every daycare.
func (r *MongoDaycareRepo) GetAll() ([]models.Daycare, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query daycares: %w", err)
	}
	defer cursor.Close(ctx)

	var daycares []models.Daycare
	for cursor.Next(ctx) {
		var d models.Daycare
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode daycare: %w", err)
		}
		daycares = append(daycares, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return daycares, nil
}

// IncrementBookingCount bumps the booking counter by one.
func (r *MongoDaycareRepo) IncrementBookingCount(id string) error {
	return incrementField(r.coll, id, "bookingCount", int64(1))
}
