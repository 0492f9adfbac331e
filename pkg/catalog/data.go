package catalog

import "github.com/mayank-0789/azclone-1/pkg/models"

var categories = []models.Category{
	{ID: 1, Name: "Electronics", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=300&h=300&fit=crop", Link: "/category/electronics"},
	{ID: 2, Name: "Fashion", Image: "https://images.unsplash.com/photo-1445205170230-053b83016050?w=300&h=300&fit=crop", Link: "/category/fashion"},
	{ID: 3, Name: "Home & Kitchen", Image: "https://images.unsplash.com/photo-1556911220-bff31c812dba?w=300&h=300&fit=crop", Link: "/category/home-kitchen"},
	{ID: 4, Name: "Books", Image: "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=300&h=300&fit=crop", Link: "/category/books"},
	{ID: 5, Name: "Sports & Outdoors", Image: "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=300&h=300&fit=crop", Link: "/category/sports-outdoors"},
	{ID: 6, Name: "Beauty & Personal Care", Image: "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=300&h=300&fit=crop", Link: "/category/beauty"},
	{ID: 7, Name: "Toys & Games", Image: "https://images.unsplash.com/photo-1558060370-d644479cb6f7?w=300&h=300&fit=crop", Link: "/category/toys-games"},
	{ID: 8, Name: "Grocery", Image: "https://images.unsplash.com/photo-1542838132-92c53300491e?w=300&h=300&fit=crop", Link: "/category/grocery"},
}

var products = []models.Product{
	{
		ID:            1,
		Title:         "Apple AirPods Pro (2nd Generation) Wireless Earbuds with MagSafe Charging Case",
		Price:         189.99,
		OriginalPrice: 249.00,
		Rating:        4.7,
		ReviewCount:   125489,
		Image:         "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "electronics",
		InStock:       true,
		Brand:         "Apple",
	},
	{
		ID:            2,
		Title:         "Samsung 65-Inch Class OLED 4K S90C Series Smart TV with Alexa Built-in",
		Price:         1297.99,
		OriginalPrice: 1799.99,
		Rating:        4.6,
		ReviewCount:   8934,
		Image:         "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "electronics",
		InStock:       true,
		Brand:         "Samsung",
	},
	{
		ID:            3,
		Title:         "Instant Pot Duo 7-in-1 Electric Pressure Cooker, Slow Cooker, Rice Cooker",
		Price:         79.95,
		OriginalPrice: 99.95,
		Rating:        4.7,
		ReviewCount:   234567,
		Image:         "https://images.unsplash.com/photo-1585515320310-259814833e62?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "home-kitchen",
		InStock:       true,
		Brand:         "Instant Pot",
	},
	{
		ID:            4,
		Title:         "Kindle Paperwhite (16 GB) - Now with 6.8\" display and adjustable warm light",
		Price:         139.99,
		OriginalPrice: 149.99,
		Rating:        4.6,
		ReviewCount:   89234,
		Image:         "https://images.unsplash.com/photo-1507842217343-583bb7270b66?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "electronics",
		InStock:       true,
		Brand:         "Amazon",
	},
	{
		ID:            5,
		Title:         "Levi's Men's 505 Regular Fit Jeans - Classic Straight Leg",
		Price:         34.99,
		OriginalPrice: 59.50,
		Rating:        4.5,
		ReviewCount:   156234,
		Image:         "https://images.unsplash.com/photo-1542272604-787c3835535d?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "fashion",
		InStock:       true,
		Brand:         "Levi's",
	},
	{
		ID:            6,
		Title:         "YETI Rambler 20 oz Stainless Steel Vacuum Insulated Tumbler",
		Price:         35.00,
		OriginalPrice: 35.00,
		Rating:        4.8,
		ReviewCount:   67890,
		Image:         "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "home-kitchen",
		InStock:       true,
		Brand:         "YETI",
	},
	{
		ID:            7,
		Title:         "Sony WH-1000XM5 Wireless Industry Leading Noise Canceling Headphones",
		Price:         328.00,
		OriginalPrice: 399.99,
		Rating:        4.6,
		ReviewCount:   45678,
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "electronics",
		InStock:       true,
		Brand:         "Sony",
	},
	{
		ID:            8,
		Title:         "Ninja Professional Plus Kitchen System with Auto-iQ",
		Price:         159.99,
		OriginalPrice: 209.99,
		Rating:        4.7,
		ReviewCount:   34521,
		Image:         "https://images.unsplash.com/photo-1570222094114-d054a817e56b?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "home-kitchen",
		InStock:       true,
		Brand:         "Ninja",
	},
	{
		ID:            9,
		Title:         "The Psychology of Money: Timeless lessons on wealth, greed, and happiness",
		Price:         14.99,
		OriginalPrice: 20.00,
		Rating:        4.7,
		ReviewCount:   98765,
		Image:         "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "books",
		InStock:       true,
	},
	{
		ID:            10,
		Title:         "Apple Watch Series 9 GPS 45mm with Sport Band",
		Price:         359.00,
		OriginalPrice: 429.00,
		Rating:        4.7,
		ReviewCount:   23456,
		Image:         "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=400&h=400&fit=crop",
		IsPrime:       true,
		Category:      "electronics",
		InStock:       true,
		Brand:         "Apple",
	},
}
