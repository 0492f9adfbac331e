package models

import (
	"fmt"
	"time"
)

// DeliveryEstimateOffset is added to an order's creation time to produce the
// estimated delivery date.
const DeliveryEstimateOffset = 3 * 24 * time.Hour

// ShippingAddress is where an order ships. Free-form, no postal validation.
type ShippingAddress struct {
	Name    string `json:"name" bson:"name"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Zip     string `json:"zip" bson:"zip"`
	Country string `json:"country" bson:"country"`
}

// Order is an immutable record of a checkout: line items are frozen product
// snapshots, the total is computed at creation and never recomputed, and no
// update or cancel operation exists.
type Order struct {
	ID                string          `json:"id" bson:"id"`
	SessionID         string          `json:"session_id" bson:"session_id"`
	Items             []CartLine      `json:"items" bson:"items"`
	Total             float64         `json:"total" bson:"total"`
	Status            string          `json:"status" bson:"status"`
	ShippingAddress   ShippingAddress `json:"shipping_address" bson:"shipping_address"`
	PaymentMethod     string          `json:"payment_method" bson:"payment_method"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery" bson:"estimated_delivery"`
}

// OrderTotal sums price times quantity over a set of line items.
func OrderTotal(items []CartLine) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the total quantity across the order's lines.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// GenerateOrderID produces the storefront's timestamp-based order id.
// Collisions within a millisecond are treated as negligible, matching the
// session id scheme.
func GenerateOrderID() string {
	return fmt.Sprintf("order_%d", time.Now().UnixMilli())
}
