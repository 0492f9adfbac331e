package models

// Product is the catalog snapshot the storefront renders and the collections
// (cart, wishlist, compare) carry around. Field names follow the public API
// contract, so the JSON tags are camelCase where the wire format is.
type Product struct {
	ID            int               `json:"id" bson:"id"`
	Title         string            `json:"title" bson:"title"`
	Price         float64           `json:"price" bson:"price"`
	OriginalPrice float64           `json:"originalPrice" bson:"original_price"`
	Rating        float64           `json:"rating" bson:"rating"`
	ReviewCount   int               `json:"reviewCount" bson:"review_count"`
	Image         string            `json:"image" bson:"image"`
	IsPrime       bool              `json:"isPrime" bson:"is_prime"`
	Category      string            `json:"category" bson:"category"`
	InStock       bool              `json:"inStock" bson:"in_stock"`
	Brand         string            `json:"brand,omitempty" bson:"brand,omitempty"`
	About         []string          `json:"about,omitempty" bson:"about,omitempty"`
	Specs         map[string]string `json:"specs,omitempty" bson:"specs,omitempty"`
}

// DiscountPercent is the rounded percentage off the original price.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price || p.OriginalPrice == 0 {
		return 0
	}
	return int((p.OriginalPrice-p.Price)/p.OriginalPrice*100 + 0.5)
}

// Category represents a storefront browse category.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Link  string `json:"link"`
}
