package utils

import "math/rand"

// RandomFloat returns a random float64 between 0.0 and 1.0.
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomIntn returns a random integer in [0, n).
func RandomIntn(n int) int {
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}
