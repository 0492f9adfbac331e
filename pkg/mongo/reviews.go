package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// ReviewsForProduct returns the product's reviews, newest first.
func ReviewsForProduct(ctx context.Context, productID int) ([]models.Review, error) {
	cursor, err := GetCollection("reviews").Find(ctx,
		bson.D{{Key: "product_id", Value: productID}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// InsertReview stores a new review and returns the stored document. Reviews
// start unverified with no helpful votes.
func InsertReview(ctx context.Context, productID int, req models.CreateReviewRequest) (models.Review, error) {
	review := models.Review{
		ID:               uuid.New().String(),
		ProductID:        productID,
		Rating:           req.Rating,
		Title:            req.Title,
		Content:          req.Content,
		UserName:         req.UserName,
		UserID:           req.UserID,
		CreatedAt:        time.Now().UTC(),
		VerifiedPurchase: false,
		HelpfulCount:     0,
	}

	if _, err := GetCollection("reviews").InsertOne(ctx, review); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// AdjustHelpfulCount moves the review's helpful count by +1 or -1. A review
// id that matches nothing is not an error; the vote just lands nowhere.
func AdjustHelpfulCount(ctx context.Context, reviewID string, helpful bool) error {
	increment := 1
	if !helpful {
		increment = -1
	}
	_, err := GetCollection("reviews").UpdateOne(ctx,
		bson.D{{Key: "id", Value: reviewID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "helpful_count", Value: increment}}}},
	)
	return err
}
