package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main wipes and reseeds the vehicles and users collections with sample data.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VAHAN BAZAR - Sample Data Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	// Clear existing data
	if _, err := config.Vehicles.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear vehicles: %v", err)
	}
	if _, err := config.Users.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}
	if _, err := config.Bookings.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear bookings: %v", err)
	}
	log.Println("✓ Existing data cleared")

	users := seedUsers(ctx)
	log.Printf("✓ Users created: %d", len(users))

	dealerID := users["dealer@vahanbazar.com"]
	count := seedVehicles(ctx, dealerID)
	log.Printf("✓ Vehicles imported: %d", count)

	fmt.Println()
	fmt.Println("🎉 Sample data imported successfully!")
	fmt.Println("📧 Test accounts created:")
	fmt.Println("   User:   john@example.com / password123")
	fmt.Println("   Dealer: dealer@vahanbazar.com / dealer123")
}

func seedUsers(ctx context.Context) map[string]primitive.ObjectID {
	type account struct {
		name, email, password, phone, role string
	}
	accounts := []account{
		{"John Doe", "john@example.com", "password123", "+91-9876543210", "user"},
		{"Dealer Admin", "dealer@vahanbazar.com", "dealer123", "+91-9876543211", "dealer"},
	}

	out := make(map[string]primitive.ObjectID, len(accounts))
	now := time.Now()
	docs := make([]any, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), 12)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user := models.User{
			ID:        primitive.NewObjectID(),
			Name:      a.name,
			Email:     a.email,
			Password:  string(hash),
			Phone:     a.phone,
			Role:      a.role,
			TestRides: []models.TestRide{},
			Listings:  []models.ListingRef{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		out[a.email] = user.ID
		docs = append(docs, user)
	}

	if _, err := config.Users.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert users: %v", err)
	}
	return out
}

// seedVehicles inserts catalog documents in the three shapes the API has to
// reconcile: the current nested schema, a legacy flat export, and a
// user-submitted listing with string+unit values.
func seedVehicles(ctx context.Context, dealerID primitive.ObjectID) int {
	now := time.Now()

	docs := []any{
		// Current nested schema
		bson.M{
			"product_id": "vb-hunter-350",
			"brand": "Royal Enfield",
			"model": "Hunter 350",
			"variant": "Metro",
			"category": "bike",
			"fuel_type": "petrol",
			"year": 2024,
			"dealer": dealerID,
			"pricing": bson.M{
				"ex_showroom": 149900.0,
				"on_road": 172000.0,
				"currency": "INR",
			},
			"engine": bson.M{
				"capacity": 349.0,
				"power": "20.2 bhp",
				"torque": "27 Nm",
			},
			"performance": bson.M{
				"top_speed": 114.0,
				"mileage": 36.2,
			},
			"ratings": bson.M{
				"user_rating": 4.4,
				"reviews_count": 812,
			},
			"features": bson.M{
				"safety": []string{"Dual-channel ABS", "Halogen headlamp"},
				"comfort": []string{"Single-piece seat"},
				"technology": []string{"Tripper pod ready"},
			},
			"images": bson.M{
				"thumbnail": "https://images.vahanbazar.example/hunter-350.jpg",
				"gallery": []string{
					"https://images.vahanbazar.example/hunter-350-1.jpg",
					"https://images.vahanbazar.example/hunter-350-2.jpg",
				},
			},
			"availability": bson.M{
				"in_stock": true,
				"delivery_time_days": 7,
			},
			"createdAt": now,
			"updatedAt": now,
		},
		bson.M{
			"product_id": "vb-ather-450x",
			"brand": "Ather",
			"model": "450X",
			"variant": "Gen 3",
			"category": "scooter",
			"fuel_type": "electric",
			"year": 2024,
			"dealer": dealerID,
			"pricing": bson.M{
				"ex_showroom": 138000.0,
				"on_road": 146000.0,
				"currency": "INR",
			},
			"battery": bson.M{
				"capacity": 3.7,
				"range": 111.0,
				"charging_time": 5.7,
			},
			"performance": bson.M{
				"top_speed": 90.0,
			},
			"ratings": bson.M{
				"user_rating": 4.2,
				"reviews_count": 431,
			},
			"features": bson.M{
				"safety": []string{"FallSafe", "Emergency stop signal"},
				"technology": []string{"7-inch touchscreen", "OTA updates"},
			},
			"images": bson.M{
				"thumbnail": "https://images.vahanbazar.example/ather-450x.jpg",
				"gallery": []string{"https://images.vahanbazar.example/ather-450x-1.jpg"},
			},
			"availability": bson.M{
				"in_stock": true,
				"delivery_time_days": 14,
			},
			"createdAt": now,
			"updatedAt": now,
		},
		// Legacy flat export: top-level price, camelCase keys, single image
		bson.M{
			"product_id": "vb-splendor-plus",
			"brand": "Hero",
			"model": "Splendor Plus",
			"category": "bike",
			"fuel_type": "petrol",
			"year": 2023,
			"exShowroom": 79000.0,
			"onRoadInr": 89000.0,
			"image": "/static/splendor-plus.jpg",
			"performance": bson.M{"mileage": 70.0, "top_speed": 87.0},
			"availability": bson.M{"in_stock": true},
			"createdAt": now,
			"updatedAt": now,
		},
		// User listing: string+unit values the way the sell form submits them
		bson.M{
			"product_id": "user_sample-pulsar",
			"brand": "Bajaj",
			"model": "Pulsar NS200",
			"variant": "ABS",
			"category": "bike",
			"fuel_type": "petrol",
			"year": 2021,
			"isUserListing": true,
			"listedBy": dealerID,
			"pricing": bson.M{
				"ex_showroom": 92000.0,
				"currency": "INR",
			},
			"engine": bson.M{
				"capacity": "199.5 cc",
				"power": "24.5 bhp",
				"torque": "18.74 Nm",
			},
			"performance": bson.M{
				"top_speed": "136 km/h",
				"mileage": "35 kmpl",
			},
			"features": bson.M{
				"safety": "Single-channel ABS, Perimeter frame",
			},
			"images": bson.M{
				"thumbnail": "//images.vahanbazar.example/pulsar-ns200.jpg",
			},
			"listingDetails": bson.M{
				"createdBy": "user",
				"condition": "good",
				"description": "Single owner, serviced regularly",
				"location": "Pune",
				"mileage": "21000 km",
			},
			"availability": bson.M{"in_stock": true},
			"createdAt": now,
			"updatedAt": now,
		},
	}

	if _, err := config.Vehicles.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert vehicles: %v", err)
	}
	return len(docs)
}
