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

// SitterRepository defines persistence operations for sitters.
type SitterRepository interface {
	Create(sitter *models.Sitter) error
	GetByID(id string) (*models.Sitter, error)
	GetAll() ([]models.Sitter, error)
	IncrementCompletedJobs(id string) error
}

// MongoSitterRepo implements SitterRepository using MongoDB.
type MongoSitterRepo struct {
	coll *mongo.Collection
}

func NewMongoSitterRepo() SitterRepository {
	coll := database.DB().Collection("sitters")
	repo := &MongoSitterRepo{coll: coll}

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

// Create inserts a new sitter document.
func (r *MongoSitterRepo) Create(sitter *models.Sitter) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, sitter); err != nil {
		return fmt.Errorf("failed to create sitter: %w", err)
	}
	return nil
}

// GetByID retrieves a sitter by its unique ID.
func (r *MongoSitterRepo) GetByID(id string) (*models.Sitter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sitter models.Sitter
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&sitter); err != nil {
		return nil, fmt.Errorf("failed to fetch sitter with id %s: %w", id, err)
	}
	return &sitter, nil
}

// GetAll retrieves every sitter.
func (r *MongoSitterRepo) GetAll() ([]models.Sitter, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query sitters: %w", err)
	}
	defer cursor.Close(ctx)

	var sitters []models.Sitter
	for cursor.Next(ctx) {
		var s models.Sitter
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode sitter: %w", err)
		}
		sitters = append(sitters, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return sitters, nil
}

// IncrementCompletedJobs bumps the completed jobs counter by one.
func (r *MongoSitterRepo) IncrementCompletedJobs(id string) error {
	return incrementField(r.coll, id, "completedJobs", int64(1))
}
