package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string             `json:"role" bson:"role"`
	TestRides []TestRide         `json:"testRides" bson:"testRides"`
	Listings  []ListingRef       `json:"listings" bson:"listings"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type TestRide struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	VehicleID     primitive.ObjectID `json:"vehicleId" bson:"vehicleId"`
	ScheduledDate time.Time          `json:"scheduledDate" bson:"scheduledDate"`
	Location      string             `json:"location" bson:"location"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type ListingRef struct {
	VehicleID primitive.ObjectID `json:"vehicleId" bson:"vehicleId"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the safe projection returned by auth and profile endpoints.
type PublicUser struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}
