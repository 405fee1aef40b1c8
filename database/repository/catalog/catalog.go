// Package catalogRepo holds the per-resource repositories backing the shop,
// sitter, consultation, daycare and donation listings.
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// incrementField applies a server-side $inc to one field of one document.
func incrementField(coll *mongo.Collection, id, field string, delta interface{}) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("failed to increment %s on %s: %w", field, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("document with id %s not found", id)
	}
	return nil
}
