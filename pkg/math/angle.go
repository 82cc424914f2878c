package math

import gomath "math"

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * (gomath.Pi / 180)
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 {
	return rad * (180 / gomath.Pi)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle reduces an accumulated angle in radians into (-2π, 2π).
// Accumulators are float64 so long sessions do not lose precision.
func WrapAngle(rad float64) float64 {
	return gomath.Mod(rad, 2*gomath.Pi)
}
