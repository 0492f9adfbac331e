package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/mayank-0789/azclone-1/pkg/catalog"
	"github.com/mayank-0789/azclone-1/pkg/global"
	"github.com/mayank-0789/azclone-1/pkg/models"
	"github.com/mayank-0789/azclone-1/pkg/mongo"
	"github.com/mayank-0789/azclone-1/pkg/redis"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// ============ CATALOG ============

func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Categories()))
}

func GetProducts(c *gin.Context) {
	category := c.Query("category")
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.ByCategory(category)))
}

func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	category := c.DefaultQuery("category", "All")
	c.JSON(http.StatusOK, global.SuccessResponse(catalog.Search(query, category)))
}

// GetProductByID retrieves a product by id with Redis caching.
func GetProductByID(c *gin.Context) {
	productID, ok := pathInt(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	// Try Redis cache first
	product, err := redis.GetProduct(ctx, productID)
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(product))
		return
	}

	// Cache miss, fall back to the catalog
	fromCatalog, found := catalog.ByID(productID)
	if !found {
		c.JSON(http.StatusNotFound, global.ErrorResponse("Product not found", []global.ValidationError{
			{Field: "id", Message: "No product exists with this id", Code: "not_found"},
		}))
		return
	}

	if cacheErr := redis.CacheProduct(ctx, &fromCatalog); cacheErr != nil {
		// Log cache error but don't fail the request
		log.Printf("Warning: failed to cache product in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(fromCatalog))
}

// ============ CART ============

func GetCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	items, err := mongo.CartItemsForSession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("Error fetching cart from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch cart", nil))
		return
	}

	// Join stored rows to catalog snapshots. Rows whose product is no longer
	// in the catalog are dropped from the view.
	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		product, found := productSnapshot(c.Request.Context(), item.ProductID)
		if !found {
			continue
		}
		lines = append(lines, models.CartLine{
			Product:  product,
			Quantity: item.Quantity,
			CartID:   item.ID,
		})
	}

	c.JSON(http.StatusOK, global.SuccessResponse(lines))
}

func AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	if _, found := catalog.ByID(req.ProductID); !found {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Product does not exist", []global.ValidationError{
			{Field: "product_id", Message: "No product exists with this id", Code: "not_found"},
		}))
		return
	}

	if err := mongo.UpsertCartItem(c.Request.Context(), req.SessionID, req.ProductID, req.Quantity); err != nil {
		log.Printf("Error adding to cart in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add to cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Added to cart"}))
}

func UpdateCartQuantity(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	productID, ok := pathInt(c, "productId")
	if !ok {
		return
	}

	quantityParam := c.Query("quantity")
	quantity, err := strconv.Atoi(quantityParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid quantity", []global.ValidationError{
			{Field: "quantity", Message: "quantity query parameter must be an integer", Code: "invalid_format"},
		}))
		return
	}

	if err := mongo.SetCartQuantity(c.Request.Context(), sessionID, productID, quantity); err != nil {
		log.Printf("Error updating cart in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Cart updated"}))
}

func RemoveFromCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	productID, ok := pathInt(c, "productId")
	if !ok {
		return
	}

	if err := mongo.RemoveCartItem(c.Request.Context(), sessionID, productID); err != nil {
		log.Printf("Error removing from cart in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove from cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Removed from cart"}))
}

func ClearCart(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	if err := mongo.ClearCart(c.Request.Context(), sessionID); err != nil {
		log.Printf("Error clearing cart in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Cart cleared"}))
}

// ============ WISHLIST ============

func GetWishlist(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	items, err := mongo.WishlistForSession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("Error fetching wishlist from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch wishlist", nil))
		return
	}

	entries := make([]models.WishlistEntry, 0, len(items))
	for _, item := range items {
		product, found := productSnapshot(c.Request.Context(), item.ProductID)
		if !found {
			continue
		}
		entries = append(entries, models.WishlistEntry{
			Product: product,
			AddedAt: item.AddedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, global.SuccessResponse(entries))
}

func AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	if _, found := catalog.ByID(req.ProductID); !found {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Product does not exist", []global.ValidationError{
			{Field: "product_id", Message: "No product exists with this id", Code: "not_found"},
		}))
		return
	}

	if err := mongo.AddWishlistItem(c.Request.Context(), req.SessionID, req.ProductID); err != nil {
		log.Printf("Error adding to wishlist in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add to wishlist", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Added to wishlist"}))
}

func RemoveFromWishlist(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	productID, ok := pathInt(c, "productId")
	if !ok {
		return
	}

	if err := mongo.RemoveWishlistItem(c.Request.Context(), sessionID, productID); err != nil {
		log.Printf("Error removing from wishlist in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to remove from wishlist", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Removed from wishlist"}))
}

// ============ ORDERS ============

func GetOrders(c *gin.Context) {
	sessionID := c.GetString("sessionId")

	orders, err := mongo.OrdersForSession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("Error fetching orders from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch orders", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(orders))
}

func CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}
	if order.ID == "" || order.SessionID == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid order", []global.ValidationError{
			{Field: "id", Message: "order id and session id are required", Code: "required"},
		}))
		return
	}

	if err := mongo.InsertOrder(c.Request.Context(), order); err != nil {
		log.Printf("Error creating order in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create order", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{
		"message":  "Order created",
		"order_id": order.ID,
	}))
}

func GetOrderDetails(c *gin.Context) {
	sessionID := c.GetString("sessionId")
	orderID := c.Param("orderId")

	order, err := mongo.OrderByID(c.Request.Context(), sessionID, orderID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Order not found", []global.ValidationError{
				{Field: "orderId", Message: "No order exists with this id", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching order from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch order", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(order))
}

// ============ REVIEWS ============

func GetProductReviews(c *gin.Context) {
	productID, ok := pathInt(c, "id")
	if !ok {
		return
	}

	reviews, err := mongo.ReviewsForProduct(c.Request.Context(), productID)
	if err != nil {
		log.Printf("Error fetching reviews from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch reviews", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(reviews))
}

func CreateReview(c *gin.Context) {
	productID, ok := pathInt(c, "id")
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	review, err := mongo.InsertReview(c.Request.Context(), productID, req)
	if err != nil {
		log.Printf("Error creating review in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create review", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(review))
}

func MarkReviewHelpful(c *gin.Context) {
	reviewID := c.Param("id")

	var req models.HelpfulRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	if err := mongo.AdjustHelpfulCount(c.Request.Context(), reviewID, req.Helpful); err != nil {
		log.Printf("Error updating review in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update review", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Updated"}))
}

// ============ HELPERS ============

// productSnapshot reads a product through the Redis cache, falling back to
// the in-process catalog and warming the cache on a miss.
func productSnapshot(ctx context.Context, productID int) (models.Product, bool) {
	if product, err := redis.GetProduct(ctx, productID); err == nil {
		return *product, true
	}

	product, found := catalog.ByID(productID)
	if !found {
		return models.Product{}, false
	}
	if err := redis.CacheProduct(ctx, &product); err != nil {
		log.Printf("Warning: failed to cache product in Redis: %v", err)
	}
	return product, true
}

// pathInt parses an integer path parameter, writing the error response
// itself when the value is malformed.
func pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid "+name, []global.ValidationError{
			{Field: name, Message: name + " must be an integer", Code: "invalid_format"},
		}))
		return 0, false
	}
	return value, true
}
