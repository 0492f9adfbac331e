package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var Router *gin.Engine

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/categories", GetCategories)

		products := api.Group("/products")
		{
			products.GET("", GetProducts)
			products.GET("/search", SearchProducts)
			products.GET("/:id", GetProductByID)
			products.GET("/:id/reviews", GetProductReviews)
			products.POST("/:id/reviews", CreateReview)
		}

		cart := api.Group("/cart")
		{
			cart.POST("", AddToCart)
			cart.GET("/:sessionId", SessionMiddleware(), GetCart)
			cart.PUT("/:sessionId/:productId", SessionMiddleware(), UpdateCartQuantity)
			cart.DELETE("/:sessionId/:productId", SessionMiddleware(), RemoveFromCart)
			cart.DELETE("/:sessionId", SessionMiddleware(), ClearCart)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.POST("", AddToWishlist)
			wishlist.GET("/:sessionId", SessionMiddleware(), GetWishlist)
			wishlist.DELETE("/:sessionId/:productId", SessionMiddleware(), RemoveFromWishlist)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", CreateOrder)
			orders.GET("/:sessionId", SessionMiddleware(), GetOrders)
			orders.GET("/:sessionId/:orderId", SessionMiddleware(), GetOrderDetails)
		}

		api.POST("/reviews/:id/helpful", MarkReviewHelpful)
	}
}
