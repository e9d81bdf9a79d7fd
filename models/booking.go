package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingTypeTestRide = "test_ride"
	BookingTypeInquiry  = "inquiry"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	Vehicle       primitive.ObjectID `json:"vehicle" bson:"vehicle"`
	Type          string             `json:"type" bson:"type"`
	PreferredDate time.Time          `json:"preferredDate" bson:"preferredDate"`
	PreferredTime string             `json:"preferredTime" bson:"preferredTime"`
	Message       string             `json:"message,omitempty" bson:"message,omitempty"`
	Status        string             `json:"status" bson:"status"`
	ContactInfo   BookingContact     `json:"contactInfo" bson:"contactInfo"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type BookingContact struct {
	Phone string `json:"phone" bson:"phone"`
	Email string `json:"email" bson:"email"`
}

func ValidBookingType(t string) bool {
	return t == BookingTypeTestRide || t == BookingTypeInquiry
}

func ValidBookingStatus(s string) bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed || s == BookingStatusCancelled
}
