package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/mayank-0789/azclone-1/internal/router"
	"github.com/mayank-0789/azclone-1/pkg/global"
	"github.com/mayank-0789/azclone-1/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()
	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
