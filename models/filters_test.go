package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func f64(v float64) *float64 { return &v }

func TestVehicleFilter_BuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter VehicleFilter
		want   bson.M
	}{
		{
			name:   "empty filter matches everything",
			filter: VehicleFilter{},
			want:   bson.M{},
		},
		{
			name:   "category is an exact match",
			filter: VehicleFilter{Category: "bike"},
			want:   bson.M{"category": "bike"},
		},
		{
			name:   "brand and fuel type combine",
			filter: VehicleFilter{Brand: "Ather", FuelType: "electric"},
			want:   bson.M{"brand": "Ather", "fuel_type": "electric"},
		},
		{
			name:   "full price range",
			filter: VehicleFilter{MinPrice: f64(50000), MaxPrice: f64(150000)},
			want:   bson.M{"pricing.ex_showroom": bson.M{"$gte": 50000.0, "$lte": 150000.0}},
		},
		{
			name:   "min price only",
			filter: VehicleFilter{MinPrice: f64(50000)},
			want:   bson.M{"pricing.ex_showroom": bson.M{"$gte": 50000.0}},
		},
		{
			name:   "max price only",
			filter: VehicleFilter{MaxPrice: f64(150000)},
			want:   bson.M{"pricing.ex_showroom": bson.M{"$lte": 150000.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.BuildQuery())
		})
	}
}

func TestVehicleFilter_SearchClauses(t *testing.T) {
	t.Run("text search is a case-insensitive disjunction", func(t *testing.T) {
		query := VehicleFilter{Search: "hunter"}.BuildQuery()

		or, ok := query["$or"].(bson.A)
		require.True(t, ok)

		regex := bson.M{"$regex": "hunter", "$options": "i"}
		assert.Contains(t, or, bson.M{"brand": regex})
		assert.Contains(t, or, bson.M{"model": regex})
		assert.Contains(t, or, bson.M{"variant": regex})
		assert.Contains(t, or, bson.M{"category": regex})
		assert.Contains(t, or, bson.M{"fuel_type": regex})
		assert.Contains(t, or, bson.M{"listingDetails.createdBy": regex})

		// performance fields store numbers as text, so they join the regex set
		assert.Contains(t, or, bson.M{"performance.mileage": regex})
		assert.Contains(t, or, bson.M{"performance.top_speed": regex})

		// non-numeric terms never produce price equality clauses
		assert.NotContains(t, or, bson.M{"pricing.ex_showroom": regex})
	})

	t.Run("numeric search adds price equality", func(t *testing.T) {
		query := VehicleFilter{Search: "149900"}.BuildQuery()

		or, ok := query["$or"].(bson.A)
		require.True(t, ok)
		assert.Contains(t, or, bson.M{"pricing.ex_showroom": 149900.0})
		assert.Contains(t, or, bson.M{"pricing.on_road": 149900.0})
	})

	t.Run("whitespace-only search is ignored", func(t *testing.T) {
		query := VehicleFilter{Search: "   "}.BuildQuery()
		assert.Equal(t, bson.M{}, query)
	})
}

func TestVehicleFilter_Sort(t *testing.T) {
	sort := VehicleFilter{}.Sort()
	require.Len(t, sort, 1)
	assert.Equal(t, "pricing.ex_showroom", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
}
