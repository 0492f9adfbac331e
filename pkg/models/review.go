package models

import "time"

// Review is a customer review for a product.
type Review struct {
	ID               string    `json:"id" bson:"id"`
	ProductID        int       `json:"product_id" bson:"product_id"`
	Rating           int       `json:"rating" bson:"rating"`
	Title            string    `json:"title" bson:"title"`
	Content          string    `json:"content" bson:"content"`
	UserName         string    `json:"user_name" bson:"user_name"`
	UserID           string    `json:"user_id" bson:"user_id"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	VerifiedPurchase bool      `json:"verified_purchase" bson:"verified_purchase"`
	HelpfulCount     int       `json:"helpful_count" bson:"helpful_count"`
}

// CreateReviewRequest is the POST /products/:id/reviews payload.
type CreateReviewRequest struct {
	Rating   int    `json:"rating" binding:"required,gte=1,lte=5"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	UserName string `json:"user_name" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
}

// HelpfulRequest marks a review as helpful (or takes the vote back).
type HelpfulRequest struct {
	Helpful bool `json:"helpful"`
}

// IsPositive reports whether the review is 4 stars or better.
func (r *Review) IsPositive() bool {
	return r.Rating >= 4
}
