package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	MongoClient *mongo.Client

	Vehicles *mongo.Collection
	Users    *mongo.Collection
	Bookings *mongo.Collection
)

func InitDB() {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
		log.Println("⚠️ MONGO_URL not set, using local default")
	}
	dbName := getEnv("MONGO_DB", "vahan_bazar")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		log.Fatalf("❌ Unable to connect to MongoDB: %v", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("❌ MongoDB ping failed: %v", err)
	}

	MongoClient = client
	db := client.Database(dbName)
	Vehicles = db.Collection("vehicles")
	Users = db.Collection("users")
	Bookings = db.Collection("bookings")

	log.Printf("✅ MongoDB connected (db: %s)", dbName)
}

func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Printf("⚠️ MongoDB disconnect error: %v", err)
		return
	}
	log.Println("✅ MongoDB connection closed")
}

// WithTimeout returns a context with a 10s timeout (generous for cold Atlas clusters)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

// APIOrigin is the absolute base used to resolve root-relative image paths.
func APIOrigin() string {
	return getEnv("API_ORIGIN", "http://localhost:8080")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
