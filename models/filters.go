package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// VehicleFilter carries the browse-page criteria. Zero values mean "no
// constraint", never "match empty".
type VehicleFilter struct {
	Category string
	Brand    string
	FuelType string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}

// FilterMetadata backs the browse sidebar.
type FilterMetadata struct {
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	FuelTypes  []string `json:"fuel_types"`
}

// BuildQuery translates the filter into a mongo query document. An empty
// filter yields bson.M{}, which matches every record.
func (f VehicleFilter) BuildQuery() bson.M {
	query := bson.M{}

	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Brand != "" {
		query["brand"] = f.Brand
	}
	if f.FuelType != "" {
		query["fuel_type"] = f.FuelType
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["pricing.ex_showroom"] = price
	}

	if q := strings.TrimSpace(f.Search); q != "" {
		query["$or"] = searchClauses(q)
	}

	return query
}

// Sort orders results ascending by ex-showroom price; ties keep the store's
// natural order.
func (f VehicleFilter) Sort() bson.D {
	return bson.D{{Key: "pricing.ex_showroom", Value: 1}}
}

// searchClauses builds the free-text disjunction: case-insensitive substring
// match over the text fields, numeric equality against both price fields when
// the term parses as a number, and substring match against the string-typed
// performance fields either way (they embed numbers as text, e.g. "120 km/h").
func searchClauses(q string) bson.A {
	regex := bson.M{"$regex": q, "$options": "i"}
	clauses := bson.A{
		bson.M{"brand": regex},
		bson.M{"model": regex},
		bson.M{"variant": regex},
		bson.M{"category": regex},
		bson.M{"fuel_type": regex},
		bson.M{"listingDetails.createdBy": regex},
	}

	if n, err := strconv.ParseFloat(q, 64); err == nil {
		clauses = append(clauses,
			bson.M{"pricing.ex_showroom": n},
			bson.M{"pricing.on_road": n},
		)
	}

	clauses = append(clauses,
		bson.M{"performance.mileage": regex},
		bson.M{"performance.top_speed": regex},
	)
	return clauses
}
