package cartRepo

import (
	"context"
	"fmt"
	"time"

	"parenthub/database"
	"parenthub/models"
	"parenthub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

func NewMongoCartRepo() CartRepository {
	coll := database.DB().Collection("cart_items")
	repo := &MongoCartRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "productId", Value: 1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Add inserts or merges the item into the user's cart.
func (r *MongoCartRepo) Add(item *models.CartItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": item.UserID, "productId": item.ProductID}

	var existing models.CartItem
	err := r.coll.FindOne(ctx, filter).Decode(&existing)
	switch err {
	case nil:
		update := bson.M{"$inc": bson.M{"quantity": item.Quantity}}
		if _, err := r.coll.UpdateOne(ctx, bson.M{"id": existing.ID}, update); err != nil {
			return fmt.Errorf("failed to merge cart item: %w", err)
		}
		return nil
	case mongo.ErrNoDocuments:
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		if _, err := r.coll.InsertOne(ctx, item); err != nil {
			return fmt.Errorf("failed to add cart item: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("failed to check cart for product %s: %w", item.ProductID, err)
	}
}

// GetItems retrieves the user's full cart.
func (r *MongoCartRepo) GetItems(userID string) ([]models.CartItem, error) {
	return r.find(bson.M{"userId": userID})
}

// GetSelectedItems retrieves the cart lines marked for checkout.
func (r *MongoCartRepo) GetSelectedItems(userID string) ([]models.CartItem, error) {
	return r.find(bson.M{"userId": userID, "selected": true})
}

// UpdateQuantity sets the quantity of one line; quantities below 1 are ignored.
func (r *MongoCartRepo) UpdateQuantity(userID, cartID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": cartID, "userId": userID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return fmt.Errorf("failed to update quantity for cart item %s: %w", cartID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("cart item %s not found", cartID)
	}
	return nil
}

// SetSelected toggles the checkout selection flag of one line.
func (r *MongoCartRepo) SetSelected(userID, cartID string, selected bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": cartID, "userId": userID}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"selected": selected}})
	if err != nil {
		return fmt.Errorf("failed to update selection for cart item %s: %w", cartID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("cart item %s not found", cartID)
	}
	return nil
}

// DeleteItems removes the given cart lines in one bulk write.
func (r *MongoCartRepo) DeleteItems(userID string, cartIDs []string) error {
	if len(cartIDs) == 0 {
		return nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(cartIDs))
	for _, id := range cartIDs {
		writes = append(writes, mongo.NewDeleteOneModel().
			SetFilter(bson.M{"id": id, "userId": userID}))
	}

	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}

// Watch emits the current cart immediately and then a fresh snapshot on every
// change-stream event for the user's lines, until ctx is canceled.
func (r *MongoCartRepo) Watch(ctx context.Context, userID string) (<-chan []models.CartItem, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"fullDocument.userId": userID},
				bson.M{"operationType": "delete"},
			},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart change stream: %w", err)
	}

	out := make(chan []models.CartItem, 1)
	if items, err := r.GetItems(userID); err == nil {
		out <- items
	}

	go func() {
		defer close(out)
		defer stream.Close(context.Background())
		logger := utils.GetLogger()

		for stream.Next(ctx) {
			items, err := r.GetItems(userID)
			if err != nil {
				logger.Warn("cart watch: snapshot refresh failed", zap.Error(err))
				continue
			}
			select {
			case out <- items:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func (r *MongoCartRepo) find(filter bson.M) ([]models.CartItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	for cursor.Next(ctx) {
		var item models.CartItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}
