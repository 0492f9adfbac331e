package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// WishlistForSession returns the session's stored wishlist rows.
func WishlistForSession(ctx context.Context, sessionID string) ([]models.WishlistItemDoc, error) {
	cursor, err := GetCollection("wishlist").Find(ctx, bson.D{{Key: "session_id", Value: sessionID}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.WishlistItemDoc
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddWishlistItem inserts the (session, product) row unless it already
// exists. Adding twice is a no-op, not an error.
func AddWishlistItem(ctx context.Context, sessionID string, productID int) error {
	collection := GetCollection("wishlist")
	filter := bson.D{{Key: "session_id", Value: sessionID}, {Key: "product_id", Value: productID}}

	if result := collection.FindOne(ctx, filter); result.Err() == nil {
		return nil
	}

	_, err := collection.InsertOne(ctx, models.WishlistItemDoc{
		ID:        uuid.New().String(),
		ProductID: productID,
		SessionID: sessionID,
		AddedAt:   time.Now().UTC(),
	})
	return err
}

// RemoveWishlistItem deletes the (session, product) row.
func RemoveWishlistItem(ctx context.Context, sessionID string, productID int) error {
	_, err := GetCollection("wishlist").DeleteOne(ctx, bson.D{
		{Key: "session_id", Value: sessionID},
		{Key: "product_id", Value: productID},
	})
	return err
}
