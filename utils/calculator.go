package utils

import (
	"errors"
	"math"
)

var (
	// ErrInvalidNumericInput rejects calculator inputs that are non-finite,
	// zero, or negative.
	ErrInvalidNumericInput = errors.New("calculator inputs must be finite and strictly positive")

	// ErrInvalidLoanTerms rejects loan terms whose amortization denominator
	// (1+r)^n - 1 collapses to zero at floating-point precision, which would
	// otherwise surface as NaN or Infinity.
	ErrInvalidLoanTerms = errors.New("loan terms produce a degenerate amortization denominator")
)

// CalculateEMI computes the equal monthly installment for a reducing-balance
// loan: monthly rate r = annualRatePct/1200, emi = P*r*(1+r)^n / ((1+r)^n - 1),
// rounded to 2 decimals.
func CalculateEMI(principal, annualRatePct float64, tenureMonths int) (float64, error) {
	if !positiveFinite(principal) || !positiveFinite(annualRatePct) || tenureMonths <= 0 {
		return 0, ErrInvalidNumericInput
	}

	monthlyRate := annualRatePct / 1200
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	denominator := factor - 1
	if denominator <= 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return 0, ErrInvalidLoanTerms
	}

	emi := principal * monthlyRate * factor / denominator
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return 0, ErrInvalidLoanTerms
	}
	return round2(emi), nil
}

// CalculateFuelCost projects fuel spend for an already-scaled distance:
// (distanceKm / mileageKmpl) * fuelPricePerUnit, rounded to 2 decimals.
// Horizon scaling (the UI multiplies a monthly distance by 24) is the
// caller's concern.
func CalculateFuelCost(distanceKm, mileageKmpl, fuelPricePerUnit float64) (float64, error) {
	if !positiveFinite(distanceKm) || !positiveFinite(mileageKmpl) || !positiveFinite(fuelPricePerUnit) {
		return 0, ErrInvalidNumericInput
	}
	fuelNeeded := distanceKm / mileageKmpl
	return round2(fuelNeeded * fuelPricePerUnit), nil
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
