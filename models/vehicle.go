package models

// RawVehicle is a vehicle document exactly as stored. The collection has
// accumulated three generations of shapes (legacy flat fields, nested numeric
// objects, and the current string+unit format), so reads stay untyped and go
// through NormalizeVehicle before anything renders or compares them.
type RawVehicle = map[string]any

// Vehicle is the canonical view every consumer works with. Numeric pointer
// fields distinguish "absent in source" (nil) from an explicit zero.
type Vehicle struct {
	ID       string `json:"_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Variant  string `json:"variant,omitempty"`
	Category string `json:"category"`
	FuelType string `json:"fuel_type"`
	Year     *int   `json:"year"`

	Pricing      VehiclePricing      `json:"pricing"`
	Engine       *VehicleEngine      `json:"engine,omitempty"`
	Battery      *VehicleBattery     `json:"battery,omitempty"`
	Performance  VehiclePerformance  `json:"performance"`
	Ratings      VehicleRatings      `json:"ratings"`
	Features     VehicleFeatures     `json:"features"`
	Images       VehicleImages       `json:"images"`
	Availability VehicleAvailability `json:"availability"`
}

type VehiclePricing struct {
	ExShowroomINR *float64 `json:"ex_showroom_inr"`
	OnRoadINR     *float64 `json:"on_road_inr"`
}

type VehicleEngine struct {
	CapacityCC  *float64 `json:"capacity_cc"`
	MaxPowerBHP *float64 `json:"max_power_bhp"`
	MaxTorqueNM *float64 `json:"max_torque_nm"`
}

type VehicleBattery struct {
	CapacityKWh       *float64 `json:"capacity_kwh"`
	RangeKM           *float64 `json:"range_km"`
	ChargingTimeHours *float64 `json:"charging_time_hours"`
}

type VehiclePerformance struct {
	TopSpeedKmph *float64 `json:"top_speed_kmph"`
	MileageKmpl  *float64 `json:"mileage_kmpl"`
}

type VehicleRatings struct {
	// An unrated vehicle and a zero-rated vehicle both come out as 0 here;
	// the storefront has always displayed them the same way.
	UserRating   float64 `json:"user_rating"`
	ReviewsCount int     `json:"reviews_count"`
}

type VehicleFeatures struct {
	Safety     []string `json:"safety"`
	Comfort    []string `json:"comfort"`
	Technology []string `json:"technology"`
}

type VehicleImages struct {
	Thumbnail string   `json:"thumbnail"`
	Gallery   []string `json:"gallery"`
}

type VehicleAvailability struct {
	InStock          bool `json:"in_stock"`
	DeliveryTimeDays *int `json:"delivery_time_days"`
}
