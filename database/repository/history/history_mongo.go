package historyRepo

import (
	"context"
	"fmt"
	"time"

	"parenthub/database"
	"parenthub/models"
	"parenthub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoHistoryRepo implements HistoryRepository using MongoDB.
type MongoHistoryRepo struct {
	coll *mongo.Collection
}

func NewMongoHistoryRepo() HistoryRepository {
	coll := database.DB().Collection("transactions")
	repo := &MongoHistoryRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new history record.
func (r *MongoHistoryRepo) Create(transaction *models.HistoryTransaction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, transaction); err != nil {
		return fmt.Errorf("failed to create history record: %w", err)
	}
	return nil
}

// GetByID retrieves one history record.
func (r *MongoHistoryRepo) GetByID(id string) (*models.HistoryTransaction, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.HistoryTransaction
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to fetch history record %s: %w", id, err)
	}
	return &record, nil
}

// GetByUser retrieves all history records for a user.
func (r *MongoHistoryRepo) GetByUser(userID string) ([]models.HistoryTransaction, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to query history for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var records []models.HistoryTransaction
	for cursor.Next(ctx) {
		var rec models.HistoryTransaction
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode history record: %w", err)
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}

// SetReviewed flips reviewed from false to true exactly once.
func (r *MongoHistoryRepo) SetReviewed(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "reviewed": false}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"reviewed": true}})
	if err != nil {
		return fmt.Errorf("failed to mark history record %s reviewed: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("history record %s not found or already reviewed", id)
	}
	return nil
}

// Watch emits the user's history immediately and then a fresh snapshot on
// every change-stream event, until ctx is canceled.
func (r *MongoHistoryRepo) Watch(ctx context.Context, userID string) (<-chan []models.HistoryTransaction, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"fullDocument.userId": userID}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open history change stream: %w", err)
	}

	out := make(chan []models.HistoryTransaction, 1)
	if records, err := r.GetByUser(userID); err == nil {
		out <- records
	}

	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		logger := utils.GetLogger()

		for stream.Next(ctx) {
			records, err := r.GetByUser(userID)
			if err != nil {
				logger.Warn("history watch: snapshot refresh failed", zap.Error(err))
				continue
			}
			select {
			case out <- records:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
