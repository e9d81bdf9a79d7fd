package vehicle_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderForComparison(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	docA := bson.M{"_id": a, "brand": "Royal Enfield"}
	docB := bson.M{"_id": b, "brand": "Ather"}
	docC := bson.M{"_id": c, "brand": "Bajaj"}

	t.Run("results follow request order, not store order", func(t *testing.T) {
		got := orderForComparison(
			[]string{c.Hex(), a.Hex(), b.Hex()},
			[]bson.M{docA, docB, docC},
		)
		require.Len(t, got, 3)
		assert.Equal(t, docC, got[0])
		assert.Equal(t, docA, got[1])
		assert.Equal(t, docB, got[2])
	})

	t.Run("duplicate ids keep first occurrence only", func(t *testing.T) {
		got := orderForComparison(
			[]string{a.Hex(), b.Hex(), a.Hex()},
			[]bson.M{docA, docB},
		)
		require.Len(t, got, 2)
		assert.Equal(t, docA, got[0])
		assert.Equal(t, docB, got[1])
	})

	t.Run("unresolved ids are skipped", func(t *testing.T) {
		got := orderForComparison(
			[]string{a.Hex(), primitive.NewObjectID().Hex(), b.Hex()},
			[]bson.M{docA, docB},
		)
		require.Len(t, got, 2)
		assert.Equal(t, docA, got[0])
		assert.Equal(t, docB, got[1])
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, orderForComparison(nil, nil))
		assert.Empty(t, orderForComparison([]string{a.Hex()}, nil))
	})
}

func TestObjectIDsFrom(t *testing.T) {
	a := primitive.NewObjectID()
	got := objectIDsFrom([]string{a.Hex(), "not-an-id", ""})
	require.Len(t, got, 1)
	assert.Equal(t, a, got[0])
}
