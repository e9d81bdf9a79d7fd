package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testOrigin = "http://localhost:8080"

func TestResolveImageURL(t *testing.T) {
	tests := []struct {
		name string
		raw  RawVehicle
		want string
	}{
		{
			name: "nested thumbnail wins over everything",
			raw: RawVehicle{
				"images": bson.M{
					"thumbnail": "https://cdn.example.com/thumb.jpg",
					"gallery":   primitive.A{"https://cdn.example.com/g1.jpg"},
				},
				"image": "https://cdn.example.com/legacy.jpg",
			},
			want: "https://cdn.example.com/thumb.jpg",
		},
		{
			name: "gallery head when thumbnail missing",
			raw: RawVehicle{
				"images": bson.M{
					"gallery": primitive.A{"https://cdn.example.com/g1.jpg", "https://cdn.example.com/g2.jpg"},
				},
			},
			want: "https://cdn.example.com/g1.jpg",
		},
		{
			name: "legacy flat image field",
			raw:  RawVehicle{"image": "https://cdn.example.com/flat.jpg"},
			want: "https://cdn.example.com/flat.jpg",
		},
		{
			name: "camelCase alias",
			raw:  RawVehicle{"imageUrl": "https://cdn.example.com/camel.jpg"},
			want: "https://cdn.example.com/camel.jpg",
		},
		{
			name: "images as plain string array",
			raw:  RawVehicle{"images": primitive.A{"https://cdn.example.com/arr.jpg"}},
			want: "https://cdn.example.com/arr.jpg",
		},
		{
			name: "images as object array unwraps url",
			raw:  RawVehicle{"images": primitive.A{bson.M{"url": "https://cdn.example.com/obj.jpg"}}},
			want: "https://cdn.example.com/obj.jpg",
		},
		{
			name: "protocol relative gets https",
			raw:  RawVehicle{"thumbnail": "//cdn.example.com/pr.jpg"},
			want: "https://cdn.example.com/pr.jpg",
		},
		{
			name: "root relative gets api origin",
			raw:  RawVehicle{"image": "/static/splendor.jpg"},
			want: "http://localhost:8080/static/splendor.jpg",
		},
		{
			name: "no candidates yields placeholder",
			raw:  RawVehicle{"brand": "Hero"},
			want: PlaceholderImageURL,
		},
		{
			name: "empty strings are skipped",
			raw: RawVehicle{
				"images": bson.M{"thumbnail": ""},
				"image":  "https://cdn.example.com/fallthrough.jpg",
			},
			want: "https://cdn.example.com/fallthrough.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImageURL(tt.raw, testOrigin))
		})
	}
}

func TestNormalizeImageURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "absolute https passes", url: "https://cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		{name: "absolute http passes", url: "http://cdn.example.com/a.jpg", want: "http://cdn.example.com/a.jpg"},
		{name: "data url passes", url: "data:image/png;base64,AAAA", want: "data:image/png;base64,AAAA"},
		{name: "protocol relative", url: "//cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
		{name: "root relative", url: "/uploads/a.jpg", want: "http://localhost:8080/uploads/a.jpg"},
		{name: "bare path kept as-is", url: "uploads/a.jpg", want: "uploads/a.jpg"},
		{name: "empty stays empty", url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeImageURL(tt.url, testOrigin)
			assert.Equal(t, tt.want, got)
			// Normalizing twice must not change the result
			assert.Equal(t, got, NormalizeImageURL(got, testOrigin))
		})
	}
}
