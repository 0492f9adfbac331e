package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// CartItemsForSession returns the session's stored cart rows.
func CartItemsForSession(ctx context.Context, sessionID string) ([]models.CartItemDoc, error) {
	cursor, err := GetCollection("cart").Find(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CartItemDoc
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertCartItem increments the (session, product) row's quantity, inserting
// the row when it does not exist yet.
func UpsertCartItem(ctx context.Context, sessionID string, productID, quantity int) error {
	collection := GetCollection("cart")
	filter := bson.D{{Key: "session_id", Value: sessionID}, {Key: "product_id", Value: productID}}

	result := collection.FindOne(ctx, filter)
	if result.Err() == nil {
		_, err := collection.UpdateOne(ctx, filter, bson.D{
			{Key: "$inc", Value: bson.D{{Key: "quantity", Value: quantity}}},
		})
		return err
	}

	_, err := collection.InsertOne(ctx, models.CartItemDoc{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	})
	return err
}

// SetCartQuantity overwrites the row's quantity. Quantities of zero or less
// delete the row instead.
func SetCartQuantity(ctx context.Context, sessionID string, productID, quantity int) error {
	collection := GetCollection("cart")
	filter := bson.D{{Key: "session_id", Value: sessionID}, {Key: "product_id", Value: productID}}

	if quantity <= 0 {
		_, err := collection.DeleteOne(ctx, filter)
		return err
	}
	_, err := collection.UpdateOne(ctx, filter, bson.D{
		{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}},
	})
	return err
}

// RemoveCartItem deletes the (session, product) row.
func RemoveCartItem(ctx context.Context, sessionID string, productID int) error {
	_, err := GetCollection("cart").DeleteOne(ctx, bson.D{
		{Key: "session_id", Value: sessionID},
		{Key: "product_id", Value: productID},
	})
	return err
}

// ClearCart deletes every row of the session's cart.
func ClearCart(ctx context.Context, sessionID string) error {
	_, err := GetCollection("cart").DeleteMany(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	return err
}
