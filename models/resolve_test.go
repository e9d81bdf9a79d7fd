package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveNumber(t *testing.T) {
	tests := []struct {
		name       string
		candidates []any
		want       float64
		wantNil    bool
	}{
		{
			name:       "first candidate wins",
			candidates: []any{185000.0, 90000.0},
			want:       185000,
		},
		{
			name:       "skips nil and empty values",
			candidates: []any{nil, "", 149900.0},
			want:       149900,
		},
		{
			name:       "parses string with unit suffix",
			candidates: []any{"249 cc"},
			want:       249,
		},
		{
			name:       "parses compact unit string",
			candidates: []any{"45kmpl"},
			want:       45,
		},
		{
			name:       "bson int32 coerces",
			candidates: []any{int32(2024)},
			want:       2024,
		},
		{
			name:       "bson int64 coerces",
			candidates: []any{int64(172000)},
			want:       172000,
		},
		{
			name:       "decimal prefix",
			candidates: []any{"199.5 cc"},
			want:       199.5,
		},
		{
			name:       "no usable candidate",
			candidates: []any{nil, "", "cc only"},
			wantNil:    true,
		},
		{
			name:       "float32 NaN skipped",
			candidates: []any{float32(math.NaN()), 27.0},
			want:       27,
		},
		{
			name:       "empty candidate list",
			candidates: nil,
			wantNil:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNumber(tt.candidates...)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestResolveString(t *testing.T) {
	assert.Equal(t, "petrol", ResolveString("", nil, "petrol"))
	assert.Equal(t, "", ResolveString(nil, "", 42))
}

func TestNumberWithUnit(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		unit   string
		want   string
		wantOK bool
	}{
		{name: "string passes through unchanged", raw: "249 cc", unit: "cc", want: "249 cc", wantOK: true},
		{name: "number gets unit appended", raw: 24.5, unit: "bhp", want: "24.5 bhp", wantOK: true},
		{name: "int coerces", raw: 136, unit: "km/h", want: "136 km/h", wantOK: true},
		{name: "empty string reports absence", raw: "", unit: "cc", wantOK: false},
		{name: "nil reports absence", raw: nil, unit: "Nm", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NumberWithUnit(tt.raw, tt.unit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureStringArray(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []string
	}{
		{
			name: "nil becomes empty slice",
			raw:  nil,
			want: []string{},
		},
		{
			name: "string slice drops blanks",
			raw:  []string{"ABS", "", "LED headlamp"},
			want: []string{"ABS", "LED headlamp"},
		},
		{
			name: "bson array stringifies",
			raw:  primitive.A{"ABS", "Digital console"},
			want: []string{"ABS", "Digital console"},
		},
		{
			name: "comma string splits and trims",
			raw:  "ABS, LED, Bluetooth",
			want: []string{"ABS", "LED", "Bluetooth"},
		},
		{
			name: "plain string becomes singleton",
			raw:  "Dual-channel ABS",
			want: []string{"Dual-channel ABS"},
		},
		{
			name: "empty string becomes empty slice",
			raw:  "",
			want: []string{},
		},
		{
			name: "mixed bson array keeps numbers as text",
			raw:  []any{"ABS", 2.0},
			want: []string{"ABS", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsureStringArray(tt.raw))
		})
	}
}

func TestResolveScalar(t *testing.T) {
	assert.Equal(t, "Hunter 350", ResolveScalar(nil, "", "Hunter 350"))
	assert.Equal(t, 349.0, ResolveScalar(nil, 349.0))
	assert.Equal(t, 24.0, ResolveScalar(int32(24)))
	assert.Nil(t, ResolveScalar(nil, ""))

	t.Run("non-finite floats never resolve", func(t *testing.T) {
		assert.Nil(t, ResolveScalar(math.NaN()))
		assert.Nil(t, ResolveScalar(float32(math.NaN())))
		assert.Nil(t, ResolveScalar(math.Inf(1), float32(math.Inf(-1))))
		assert.Equal(t, 349.0, ResolveScalar(math.NaN(), 349.0))
	})
}
