package orbitviz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// OrbitPath samples a closed circular orbit guide of the given radius about
// center, as an ordered sequence of samples points. The circle lies in the
// reference plane (perpendicular to the Z axis) tilted by the inclination i
// and right ascension Ω, both in degrees. It is a pure function: the guide is
// a snapshot and goes stale if the orbit shape changes, recomputation is the
// caller's responsibility.
func OrbitPath(center r3.Vec, radius float64, samples int, i, Ω float64) []r3.Vec {
	if samples < 1 {
		return nil
	}
	iRad := Deg2rad(i)
	ΩRad := Deg2rad(Ω)
	pts := make([]r3.Vec, samples)
	for k := 0; k < samples; k++ {
		θ := 2 * math.Pi * float64(k) / float64(samples)
		sθ, cθ := math.Sincos(θ)
		p := r3.Vec{X: radius * cθ, Y: radius * sθ}
		if iRad != 0 || ΩRad != 0 {
			p = Rot313Vec(0, -iRad, -ΩRad, p)
		}
		pts[k] = r3.Add(center, p)
	}
	return pts
}

// CircularVelocity returns the tangential speed of a circular orbit of radius
// r about a body of gravitational parameter μ = G*M.
func CircularVelocity(μ, r float64) float64 {
	return math.Sqrt(μ / r)
}
