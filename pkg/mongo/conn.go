package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mayank-0789/azclone-1/pkg/global"
)

func GetMongoClient() *mongo.Client {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)

	clientOptions := options.Client().ApplyURI(global.GetMongoURI()).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(clientOptions)
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}
	return client
}

func GetDatabase() *mongo.Database {
	return GetMongoClient().Database(global.GetDatabaseName())
}

func GetCollection(collectionName string) *mongo.Collection {
	return GetDatabase().Collection(collectionName)
}

func InitMongoDB() {
	client := GetMongoClient()
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB successfully")
}

// EnsureIndexesOnStartup creates the indexes the collection queries lean on.
// Cart and wishlist rows are unique per (session, product); orders and
// reviews are read newest-first.
func EnsureIndexesOnStartup() {
	ctx, cancel := global.GetDefaultTimer()
	defer cancel()

	indexes := map[string]mongo.IndexModel{
		"cart": {
			Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"wishlist": {
			Keys:    bson.D{{Key: "session_id", Value: 1}, {Key: "product_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"orders": {
			Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		"reviews": {
			Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}

	for name, model := range indexes {
		if _, err := GetCollection(name).Indexes().CreateOne(ctx, model); err != nil {
			log.Fatalf("Failed to ensure indexes on %s: %v", name, err)
		}
	}
}
