package orbitviz

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// unit returns the unit vector of a given vector, or the zero vector if the
// norm is zero within tolerance.
func unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return r3.Vec{}
	}
	return r3.Scale(1/n, v)
}

// Spherical2Cartesian returns the provided spherical coordinates (ρ, θ, φ) in Cartesian.
func Spherical2Cartesian(ρ, θ, φ float64) r3.Vec {
	sθ, cθ := math.Sincos(θ)
	sφ, cφ := math.Sincos(φ)
	return r3.Vec{X: ρ * sθ * cφ, Y: ρ * sθ * sφ, Z: ρ * cθ}
}

// Deg2rad converts degrees to radians, and enforces only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforces only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a*rad2deg, 360)
}
