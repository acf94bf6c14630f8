package stats

import "math"

// OneRepMax estimates a single-rep maximum with the Epley formula.
// Inputs are expected to be validated by the caller.
func OneRepMax(weightKg float64, reps int) float64 {
	return weightKg * (1 + float64(reps)/30)
}

// RoundTo rounds x half away from zero to the given number of decimals.
func RoundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
