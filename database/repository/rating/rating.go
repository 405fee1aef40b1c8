package ratingRepo

import (
	"context"
	"fmt"
	"time"

	"parenthub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Aggregator recomputes the running average rating embedded on a rated
// resource document (doctor, sitter, daycare, product).
type Aggregator interface {
	// SubmitRating folds one 1..5 star value into the resource's
	// {rating, reviewCount} pair as a single atomic read-modify-write.
	SubmitRating(collection, resourceID string, stars int) error
}

// MongoAggregator implements Aggregator with mongo session transactions.
type MongoAggregator struct{}

func NewMongoAggregator() Aggregator {
	return &MongoAggregator{}
}

// NextAverage returns the weighted mean after adding one rating.
func NextAverage(average float64, count int64, stars int) float64 {
	return (average*float64(count) + float64(stars)) / float64(count+1)
}

type ratedDoc struct {
	Rating      float64 `bson:"rating"`
	ReviewCount int64   `bson:"reviewCount"`
}

// SubmitRating reads the current aggregate and writes back the new average
// and count+1 inside one transaction. The driver retries transient
// transaction conflicts; after that the caller decides what to surface.
func (a *MongoAggregator) SubmitRating(collection, resourceID string, stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("star value %d out of range", stars)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection(collection)
	sess, err := coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var doc ratedDoc
		if err := coll.FindOne(sc, bson.M{"id": resourceID}).Decode(&doc); err != nil {
			return fmt.Errorf("failed to fetch rated resource %s: %w", resourceID, err)
		}

		update := bson.M{"$set": bson.M{
			"rating":      NextAverage(doc.Rating, doc.ReviewCount, stars),
			"reviewCount": doc.ReviewCount + 1,
		}}
		if _, err := coll.UpdateOne(sc, bson.M{"id": resourceID}, update); err != nil {
			return fmt.Errorf("failed to write rating aggregate: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("rating transaction failed: %w", err)
	}

	return nil
}
