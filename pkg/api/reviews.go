package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// ReviewsClient reads and writes product reviews. Reviews are keyed by
// product, not by session.
type ReviewsClient struct {
	c *Client
}

// ForProduct fetches a product's reviews, newest first.
func (rc *ReviewsClient) ForProduct(ctx context.Context, productID int) ([]models.Review, error) {
	var reviews []models.Review
	err := rc.c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/reviews", productID), nil, &reviews)
	return reviews, err
}

// Create submits a review and returns the stored document with its
// server-generated id.
func (rc *ReviewsClient) Create(ctx context.Context, productID int, req models.CreateReviewRequest) (models.Review, error) {
	var review models.Review
	err := rc.c.do(ctx, http.MethodPost, fmt.Sprintf("/products/%d/reviews", productID), req, &review)
	return review, err
}

// MarkHelpful votes a review up, or takes the vote back when helpful is false.
func (rc *ReviewsClient) MarkHelpful(ctx context.Context, reviewID string, helpful bool) error {
	return rc.c.do(ctx, http.MethodPost, "/reviews/"+reviewID+"/helpful", models.HelpfulRequest{Helpful: helpful}, nil)
}
