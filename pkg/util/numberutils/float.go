package numberutils

import "math"

// FloorToInt returns the greatest integer less than or equal to value.
// It returns 0 for NaN and clamps infinities to the int range.
func FloorToInt(value float64) int {
	if math.IsNaN(value) {
		return 0
	}
	floored := math.Floor(value)
	if floored >= math.MaxInt {
		return math.MaxInt
	}
	if floored <= math.MinInt {
		return math.MinInt
	}
	return int(floored)
}

// RoundTo rounds value half away from zero to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	if places < 0 {
		places = 0
	}
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}
