package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeVehicle reconciles a raw document of any historical shape into the
// canonical Vehicle. It is pure and total: any JSON-shaped input produces a
// view, with missing groups degrading to nil/empty defaults rather than
// erroring. Unrecognized fields are ignored.
func NormalizeVehicle(raw RawVehicle, apiOrigin string) Vehicle {
	if raw == nil {
		raw = RawVehicle{}
	}

	v := Vehicle{
		ID:       resolveID(raw),
		Brand:    ResolveString(raw["brand"]),
		Model:    ResolveString(raw["model"]),
		Variant:  ResolveString(raw["variant"]),
		Category: ResolveString(raw["category"]),
		FuelType: ResolveString(raw["fuel_type"], raw["fuelType"]),
	}

	if y := ResolveNumber(raw["year"]); y != nil {
		year := int(*y)
		v.Year = &year
	}

	// Pricing: merge aliases even when a pricing object exists, since legacy
	// flat fields and the nested object coexist in older documents. A stored
	// 0 survives; only true absence becomes nil.
	pricing, _ := asMap(raw["pricing"])
	v.Pricing = VehiclePricing{
		ExShowroomINR: ResolveNumber(
			pricing["ex_showroom_inr"], pricing["exShowroom"], pricing["exShowroomInr"], pricing["ex_showroom"],
			raw["ex_showroom_inr"], raw["exShowroom"], raw["price"],
		),
		OnRoadINR: ResolveNumber(
			pricing["on_road_inr"], pricing["onRoad"], pricing["onRoadInr"], pricing["on_road"],
			raw["on_road_inr"], raw["onRoad"], raw["onRoadInr"], raw["onroadPrice"],
		),
	}

	// Engine and battery exist only when the source carries the group.
	if engine, ok := asMap(raw["engine"]); ok {
		v.Engine = &VehicleEngine{
			CapacityCC:  ResolveNumber(engine["capacity_cc"], engine["capacity"], engine["cc"]),
			MaxPowerBHP: ResolveNumber(engine["max_power_bhp"], engine["power_bhp"], engine["power"]),
			MaxTorqueNM: ResolveNumber(engine["max_torque_nm"], engine["torque_nm"], engine["torque"]),
		}
	}
	if battery, ok := asMap(raw["battery"]); ok {
		v.Battery = &VehicleBattery{
			CapacityKWh:       ResolveNumber(battery["capacity_kwh"], battery["capacity"]),
			RangeKM:           ResolveNumber(battery["range_km"], battery["range"]),
			ChargingTimeHours: ResolveNumber(battery["charging_time_hours"], battery["charging_time"]),
		}
	}

	performance, _ := asMap(raw["performance"])
	v.Performance = VehiclePerformance{
		TopSpeedKmph: ResolveNumber(performance["top_speed_kmph"], performance["top_speed"], performance["topSpeed"]),
		MileageKmpl:  ResolveNumber(performance["mileage_kmpl"], performance["mileage"], performance["kmpl"]),
	}

	// Ratings default to zero; "no rating yet" and "rated zero" have always
	// displayed identically on the storefront.
	ratings, _ := asMap(raw["ratings"])
	if r := ResolveNumber(ratings["user_rating"], ratings["average"], ratings["rating"],
		raw["user_rating"], raw["rating"], raw["avg_rating"]); r != nil {
		v.Ratings.UserRating = *r
	}
	if n := ResolveNumber(ratings["reviews_count"], ratings["total_reviews"], ratings["reviews"],
		raw["reviews_count"], raw["reviews"]); n != nil && *n > 0 {
		v.Ratings.ReviewsCount = int(*n)
	}

	features, _ := asMap(raw["features"])
	v.Features = VehicleFeatures{
		Safety:     dedupeTrimmed(EnsureStringArray(features["safety"])),
		Comfort:    dedupeTrimmed(EnsureStringArray(features["comfort"])),
		Technology: dedupeTrimmed(EnsureStringArray(features["technology"])),
	}

	v.Images = VehicleImages{
		Thumbnail: ResolveImageURL(raw, apiOrigin),
		Gallery:   resolveGallery(raw, apiOrigin),
	}

	if availability, ok := asMap(raw["availability"]); ok {
		v.Availability.InStock = truthy(availability["in_stock"])
		if d := ResolveNumber(availability["delivery_time_days"], availability["delivery"], availability["delivery_time"]); d != nil {
			days := int(*d)
			v.Availability.DeliveryTimeDays = &days
		}
	}

	return v
}

func resolveID(raw RawVehicle) string {
	switch id := raw["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		if id != "" {
			return id
		}
	}
	return ResolveString(raw["product_id"], raw["id"])
}

// resolveGallery accepts images.gallery or a top-level images array, each in
// string or {url} element form. Entries that don't unwrap to a string drop.
func resolveGallery(raw RawVehicle, apiOrigin string) []string {
	var items []any
	if imgs, ok := asMap(raw["images"]); ok {
		items = asSlice(imgs["gallery"])
	}
	if items == nil {
		if arr := asSlice(raw["images"]); arr != nil {
			items = arr
		} else {
			items = asSlice(raw["gallery"])
		}
	}

	gallery := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := unwrapURL(it).(string); ok && s != "" {
			gallery = append(gallery, NormalizeImageURL(s, apiOrigin))
		}
	}
	return gallery
}

// dedupeTrimmed trims every entry, drops blanks, and keeps the first
// occurrence of each value in insertion order.
func dedupeTrimmed(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "yes" || b == "1"
	default:
		if n, ok := toNumber(v); ok {
			return n != 0
		}
		return false
	}
}

// asMap unifies the map shapes the bson decoder and plain JSON produce.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]any:
		return m, true
	case bson.D:
		out := make(map[string]any, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	default:
		return map[string]any{}, false
	}
}

func asSlice(v any) []any {
	switch s := v.(type) {
	case primitive.A:
		return s
	case []any:
		return s
	case []string:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}
