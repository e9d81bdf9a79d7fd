package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEMI(t *testing.T) {
	t.Run("standard bike loan", func(t *testing.T) {
		emi, err := CalculateEMI(200000, 9, 36)
		require.NoError(t, err)
		assert.InDelta(t, 6360.40, emi, 1.0)
	})

	t.Run("single month repays principal plus one month of interest", func(t *testing.T) {
		emi, err := CalculateEMI(120000, 12, 1)
		require.NoError(t, err)
		// r = 0.01, so one installment is exactly 1.01 * principal
		assert.InDelta(t, 121200.0, emi, 0.01)
		assert.Equal(t, emi, math.Round(emi*100)/100)
	})

	t.Run("longer tenure lowers the installment", func(t *testing.T) {
		short, err := CalculateEMI(150000, 10, 12)
		require.NoError(t, err)
		long, err := CalculateEMI(150000, 10, 60)
		require.NoError(t, err)
		assert.Less(t, long, short)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		tests := []struct {
			name      string
			principal float64
			rate      float64
			tenure    int
		}{
			{name: "zero principal", principal: 0, rate: 9, tenure: 36},
			{name: "negative principal", principal: -100, rate: 9, tenure: 36},
			{name: "zero rate", principal: 200000, rate: 0, tenure: 36},
			{name: "negative rate", principal: 200000, rate: -5, tenure: 36},
			{name: "zero tenure", principal: 200000, rate: 9, tenure: 0},
			{name: "negative tenure", principal: 200000, rate: 9, tenure: -12},
			{name: "NaN principal", principal: math.NaN(), rate: 9, tenure: 36},
			{name: "infinite rate", principal: 200000, rate: math.Inf(1), tenure: 36},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := CalculateEMI(tt.principal, tt.rate, tt.tenure)
				assert.ErrorIs(t, err, ErrInvalidNumericInput)
			})
		}
	})

	t.Run("degenerate denominator", func(t *testing.T) {
		// A rate this small leaves (1+r)^n - 1 at zero in float64
		_, err := CalculateEMI(200000, 1e-300, 12)
		assert.ErrorIs(t, err, ErrInvalidLoanTerms)
	})
}

func TestCalculateFuelCost(t *testing.T) {
	t.Run("monthly commute", func(t *testing.T) {
		cost, err := CalculateFuelCost(800, 40, 110)
		require.NoError(t, err)
		assert.Equal(t, 2200.0, cost)
	})

	t.Run("result rounds to paise", func(t *testing.T) {
		cost, err := CalculateFuelCost(100, 37, 102.5)
		require.NoError(t, err)
		assert.InDelta(t, 277.03, cost, 0.001)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, args := range [][3]float64{
			{0, 40, 110},
			{800, 0, 110},
			{800, 40, 0},
			{-800, 40, 110},
			{800, math.NaN(), 110},
			{800, 40, math.Inf(1)},
		} {
			_, err := CalculateFuelCost(args[0], args[1], args[2])
			assert.ErrorIs(t, err, ErrInvalidNumericInput)
		}
	})
}
