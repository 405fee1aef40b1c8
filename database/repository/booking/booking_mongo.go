package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"parenthub/database"
	"parenthub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per bookable service type.
const (
	SitterAppointments = "sitter_appointments"
	DoctorAppointments = "appointments"
)

// MongoBookingRepo implements BookingRepository over one appointments collection.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a booking repository for the named collection.
func NewMongoBookingRepo(collection string) BookingRepository {
	coll := database.DB().Collection(collection)
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "resourceId", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListBookedTimes returns the reserved time labels for resource+date.
func (r *MongoBookingRepo) ListBookedTimes(resourceID, date string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"resourceId": resourceID, "date": date}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked times for %s on %s: %w", resourceID, date, err)
	}
	defer cursor.Close(ctx)

	var times []string
	for cursor.Next(ctx) {
		var slot models.BookingSlot
		if err := cursor.Decode(&slot); err != nil {
			return nil, fmt.Errorf("failed to decode booking slot: %w", err)
		}
		times = append(times, slot.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return times, nil
}

// ReserveSlot upserts the booking under its composite key. Last write wins.
func (r *MongoBookingRepo) ReserveSlot(resourceID, date, timeLabel string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	slot := models.BookingSlot{
		ResourceID: resourceID,
		Date:       date,
		Time:       timeLabel,
		CreatedAt:  time.Now(),
	}

	key := fmt.Sprintf("%s_%s_%s", resourceID, date, timeLabel)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, slot, opts); err != nil {
		return fmt.Errorf("failed to reserve slot %s: %w", key, err)
	}
	return nil
}
