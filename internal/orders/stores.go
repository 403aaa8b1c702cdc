package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aurelia_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOrderStore persists orders with a unique index on payment_intent_id,
// the server-side backstop against duplicate submissions.
type MongoOrderStore struct {
	Col *mongo.Collection
}

func (s *MongoOrderStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "payment_intent_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *MongoOrderStore) Insert(ctx context.Context, o *models.Order) error {
	res, err := s.Col.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}
	return nil
}

func (s *MongoOrderStore) FindByPaymentIntent(ctx context.Context, intentID string) (*models.Order, error) {
	var o models.Order
	err := s.Col.FindOne(ctx, bson.M{"payment_intent_id": intentID}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *MongoOrderStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = s.Col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// MongoStockStore performs atomic decrement-with-floor on the products
// collection. The filter only matches when enough stock remains, so two
// simultaneous checkouts of the last unit cannot both win.
type MongoStockStore struct {
	Col *mongo.Collection
}

func (s *MongoStockStore) Decrement(ctx context.Context, item models.OrderItem) error {
	oid, err := primitive.ObjectIDFromHex(item.ProductID)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", item.ProductID, err)
	}

	filter, update := stockDecrement(oid, item)
	res, err := s.Col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the product is gone or the floor check failed.
		if n, err := s.Col.CountDocuments(ctx, bson.M{"_id": oid}); err == nil && n == 0 {
			return fmt.Errorf("product %s not found", item.ProductID)
		}
		return ErrInsufficientStock
	}
	return nil
}

func (s *MongoStockStore) Restore(ctx context.Context, item models.OrderItem) error {
	oid, err := primitive.ObjectIDFromHex(item.ProductID)
	if err != nil {
		return err
	}
	_, err = s.Col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": stockFields(item, item.Quantity)})
	return err
}

// stockDecrement builds the conditional update for one order line.
func stockDecrement(oid primitive.ObjectID, item models.OrderItem) (bson.M, bson.M) {
	filter := bson.M{
		"_id":            oid,
		"count_in_stock": bson.M{"$gte": item.Quantity},
	}
	return filter, bson.M{"$inc": stockFields(item, -item.Quantity)}
}

// stockFields returns the counters one line moves. Bead inventory is tracked
// in strings of beads as well as sellable units, so bead lines move both.
func stockFields(item models.OrderItem, delta int) bson.M {
	fields := bson.M{"count_in_stock": delta}
	if item.ProductType == models.TypeBead {
		fields["inventory_no_of_line"] = delta
	}
	return fields
}

// MongoAbandonedCartStore flips every unrecovered abandoned cart of a user
// once an order of theirs lands.
type MongoAbandonedCartStore struct {
	Col *mongo.Collection
}

func (s *MongoAbandonedCartStore) MarkRecovered(ctx context.Context, userID string) error {
	_, err := s.Col.UpdateMany(ctx,
		bson.M{"user_id": userID, "recovered": false},
		bson.M{"$set": bson.M{"recovered": true, "updated_at": time.Now()}},
	)
	return err
}
