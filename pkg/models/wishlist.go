package models

import "time"

// WishlistEntry is the product snapshot a wishlist holds, unique by product id.
type WishlistEntry struct {
	Product `bson:",inline"`
	AddedAt string `json:"added_at,omitempty" bson:"added_at,omitempty"`
}

// WishlistItemDoc is the persisted wishlist row.
type WishlistItemDoc struct {
	ID        string    `json:"id" bson:"id"`
	ProductID int       `json:"product_id" bson:"product_id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`
}

// AddToWishlistRequest is the POST /wishlist payload.
type AddToWishlistRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}
