package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// OrdersForSession returns the session's orders, newest first.
func OrdersForSession(ctx context.Context, sessionID string) ([]models.Order, error) {
	cursor, err := GetCollection("orders").Find(ctx,
		bson.D{{Key: "session_id", Value: sessionID}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// InsertOrder stores the order exactly as submitted.
func InsertOrder(ctx context.Context, order models.Order) error {
	_, err := GetCollection("orders").InsertOne(ctx, order)
	return err
}

// OrderByID returns one order scoped to its session.
func OrderByID(ctx context.Context, sessionID, orderID string) (models.Order, error) {
	var order models.Order
	err := GetCollection("orders").FindOne(ctx, bson.D{
		{Key: "session_id", Value: sessionID},
		{Key: "id", Value: orderID},
	}).Decode(&order)
	return order, err
}
