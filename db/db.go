package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	OrderCollection   *mongo.Collection
	ContactCollection *mongo.Collection
	CouponCollection  *mongo.Collection
	Client            *mongo.Client
)

// Initialize MongoDB connection
func init() {
	// package init runs before main, so pick up .env here too
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	OrderCollection = Client.Database("storedb").Collection("orders")
	ContactCollection = Client.Database("storedb").Collection("contacts")
	CouponCollection = Client.Database("storedb").Collection("coupons")
}
