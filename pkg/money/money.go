// Package money converts between rupees and paise with explicit rounding.
package money

import (
	"fmt"
	"math"
)

const paisePerRupee = 100

// Paise converts a rupee amount to whole paise, rounding to the nearest paisa.
// Negative and non-finite amounts are rejected.
func Paise(rupees float64) (int64, error) {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return 0, fmt.Errorf("amount %v is not a finite number", rupees)
	}
	if rupees < 0 {
		return 0, fmt.Errorf("amount %v is negative", rupees)
	}
	return int64(math.Round(rupees * paisePerRupee)), nil
}

// Rupees converts paise to a rupee amount with two-decimal precision.
func Rupees(paise int64) float64 {
	return float64(paise) / paisePerRupee
}

// AddPaise adds a paise amount to a rupee total, rounding the result to two
// decimals so running totals do not accumulate float drift.
func AddPaise(totalRupees float64, paise int64) float64 {
	return math.Round(totalRupees*paisePerRupee+float64(paise)) / paisePerRupee
}
