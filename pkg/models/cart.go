package models

import "time"

// CartLine is one line of a session's cart as served by the backend: the
// product snapshot joined with the stored quantity. At most one line exists
// per product id and quantity never drops below 1 (zero means removal).
type CartLine struct {
	Product  `bson:",inline"`
	Quantity int    `json:"quantity" bson:"quantity"`
	CartID   string `json:"cart_id,omitempty" bson:"cart_id,omitempty"`
}

// Subtotal is price times quantity for this line.
func (l *CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartItemDoc is the persisted cart row: session scoped, one row per product.
type CartItemDoc struct {
	ID        string    `json:"id" bson:"id"`
	ProductID int       `json:"product_id" bson:"product_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	SessionID string    `json:"session_id" bson:"session_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// AddToCartRequest is the POST /cart payload.
type AddToCartRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"session_id" binding:"required"`
}
