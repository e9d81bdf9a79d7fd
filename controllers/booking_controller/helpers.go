package booking_controller

import (
	"context"
	"log"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// vehicleSummary is the compact vehicle view embedded in booking responses,
// matching the fields a booking list actually renders.
type vehicleSummary struct {
	ID        string   `json:"_id"`
	Brand     string   `json:"brand"`
	Model     string   `json:"model"`
	Variant   string   `json:"variant,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
}

// testRideMirror is the dashboard entry kept on the user document for a
// test_ride booking. It shares the booking's ID; status updates key on it.
func testRideMirror(b models.Booking) models.TestRide {
	return models.TestRide{
		ID:            b.ID,
		VehicleID:     b.Vehicle,
		ScheduledDate: b.PreferredDate,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

type bookingView struct {
	models.Booking
	VehicleDetails *vehicleSummary    `json:"vehicleDetails,omitempty"`
	UserDetails    *models.PublicUser `json:"userDetails,omitempty"`
}

// vehicleSummaries loads the referenced vehicles in one query and returns
// them keyed by hex ID. Missing vehicles are simply absent from the map.
func vehicleSummaries(ctx context.Context, ids []primitive.ObjectID) map[string]vehicleSummary {
	out := make(map[string]vehicleSummary, len(ids))
	if len(ids) == 0 {
		return out
	}

	cursor, err := config.Vehicles.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("[bookings] vehicle summary query failed: %v", err)
		return out
	}
	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		log.Printf("[bookings] vehicle summary decode failed: %v", err)
		return out
	}

	apiOrigin := config.APIOrigin()
	for _, raw := range raws {
		v := models.NormalizeVehicle(raw, apiOrigin)
		if v.ID == "" {
			continue
		}
		out[v.ID] = vehicleSummary{
			ID:        v.ID,
			Brand:     v.Brand,
			Model:     v.Model,
			Variant:   v.Variant,
			Price:     v.Pricing.ExShowroomINR,
			Thumbnail: v.Images.Thumbnail,
		}
	}
	return out
}

// decorate attaches vehicle summaries (and optionally user profiles) to a
// page of bookings without issuing per-booking queries.
func decorate(ctx context.Context, bookings []models.Booking, withUsers bool) []bookingView {
	vehicleIDs := make([]primitive.ObjectID, 0, len(bookings))
	userIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, b := range bookings {
		vehicleIDs = append(vehicleIDs, b.Vehicle)
		userIDs = append(userIDs, b.User)
	}

	vehicles := vehicleSummaries(ctx, vehicleIDs)

	users := map[string]models.PublicUser{}
	if withUsers && len(userIDs) > 0 {
		cursor, err := config.Users.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
		if err != nil {
			log.Printf("[bookings] user summary query failed: %v", err)
		} else {
			var all []models.User
			if err := cursor.All(ctx, &all); err != nil {
				log.Printf("[bookings] user summary decode failed: %v", err)
			}
			for _, u := range all {
				users[u.ID.Hex()] = u.Public()
			}
		}
	}

	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		view := bookingView{Booking: b}
		if v, ok := vehicles[b.Vehicle.Hex()]; ok {
			view.VehicleDetails = &v
		}
		if u, ok := users[b.User.Hex()]; ok {
			view.UserDetails = &u
		}
		views = append(views, view)
	}
	return views
}
