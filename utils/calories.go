package utils

import "github.com/Ipannazim/Calorie-Tracker/models"

// ComputeCalories converts a consumed amount into calories using the
// catalog's calorie density. Serving-unit foods store calories per serving;
// gram-unit foods store calories per 100 g.
//
// The result is unrounded. Rounding happens exactly once, when the entry is
// persisted, so repeated summation does not compound rounding error.
// Callers must have validated amount > 0 already; a bad unit is a
// programmer error and yields 0.
func ComputeCalories(unit string, amount, caloriesPerUnit float64) float64 {
	switch unit {
	case models.UnitServing:
		return amount * caloriesPerUnit
	case models.UnitGram:
		return (amount / 100) * caloriesPerUnit
	}
	return 0
}
