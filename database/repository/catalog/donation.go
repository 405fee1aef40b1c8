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

// DonationRepository defines persistence operations for donation campaigns.
type DonationRepository interface {
	GetByID(id string) (*models.Donation, error)
	GetAll() ([]models.Donation, error)
	AddToCurrentAmount(id string, amount float64) error
	IncrementViewCount(id string) error
}

// MongoDonationRepo implements DonationRepository using MongoDB.
type MongoDonationRepo struct {
	coll *mongo.Collection
}

func NewMongoDonationRepo() DonationRepository {
	coll := database.DB().Collection("donations")
	repo := &MongoDonationRepo{coll: coll}

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

// GetByID retrieves a campaign by its unique ID.
func (r *MongoDonationRepo) GetByID(id string) (*models.Donation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var donation models.Donation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&donation); err != nil {
		return nil, fmt.Errorf("failed to fetch donation with id %s: %w", id, err)
	}
	return &donation, nil
}

// GetAll retrieves every campaign.
func (r *MongoDonationRepo) GetAll() ([]models.Donation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query donations: %w", err)
	}
	defer cursor.Close(ctx)

	var donations []models.Donation
	for cursor.Next(ctx) {
		var d models.Donation
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode donation: %w", err)
		}
		donations = append(donations, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return donations, nil
}

// AddToCurrentAmount adds the donated nominal to the campaign's running total.
func (r *MongoDonationRepo) AddToCurrentAmount(id string, amount float64) error {
	return incrementField(r.coll, id, "currentAmount", amount)
}

// IncrementViewCount bumps the view counter by one.
func (r *MongoDonationRepo) IncrementViewCount(id string) error {
	return incrementField(r.coll, id, "viewCount", int64(1))
}
