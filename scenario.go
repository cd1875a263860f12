package orbitviz

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
	// SunMass is the mass of the Sun in kilograms.
	SunMass = 1.9885e30
)

// Scenario bundles the construction inputs of an engine.
type Scenario struct {
	SunMass float64
	Planets []PlanetSpec
}

// InnerSolarSystem returns the four inner planets on circular orbit
// insertions at their mean distances, in SI units (use with Physical).
func InnerSolarSystem() Scenario {
	return Scenario{
		SunMass: SunMass,
		Planets: []PlanetSpec{
			{Name: "Mercury", Mass: 3.3011e23, Distance: 5.7909e10, Inclination: 7.005, RAAN: 48.331, RotationSpeed: 1.24e-6},
			{Name: "Venus", Mass: 4.8675e24, Distance: 1.0821e11, Inclination: 3.395, RAAN: 76.680, RotationSpeed: -2.99e-7},
			{Name: "Earth", Mass: 5.9724e24, Distance: 1.496e11, RotationSpeed: 7.2921158553e-5},
			{Name: "Mars", Mass: 6.4171e23, Distance: 2.2794e11, Inclination: 1.850, RAAN: 49.558, RotationSpeed: 7.088e-5},
		},
	}
}

// StylizedSystem returns the abstract unit demo set (use with Stylized).
func StylizedSystem() Scenario {
	return Scenario{
		SunMass: 2e6,
		Planets: []PlanetSpec{
			{Name: "Ash", Mass: 1, Distance: 40, RotationSpeed: 0.02},
			{Name: "Birch", Mass: 3, Distance: 70, Inclination: 5, RotationSpeed: 0.015},
			{Name: "Cedar", Mass: 2, Distance: 110, RAAN: 30, RotationSpeed: 0.01},
			{Name: "Drift", Mass: 0.5, Distance: 160, Inclination: 12, RAAN: 75, RotationSpeed: 0.03},
		},
	}
}

// Belt returns n minor bodies on circular insertions with normally
// distributed radii about mean with deviation σ. All randomness happens here,
// at construction time: the engine itself stays deterministic.
func Belt(n int, mean, σ float64, seed uint64) []PlanetSpec {
	rnd := rand.New(rand.NewSource(seed))
	dist := distuv.Normal{Mu: mean, Sigma: σ, Src: rnd}
	specs := make([]PlanetSpec, n)
	for i := range specs {
		r := dist.Rand()
		if r < σ {
			r = σ // keep pathological draws off the attractor
		}
		specs[i] = PlanetSpec{
			Name:     fmt.Sprintf("belt-%04d", i),
			Mass:     1e-3 * mean, // inert tracer mass
			Distance: r,
			RAAN:     rnd.Float64() * 360,
		}
	}
	return specs
}

// HelioState returns the heliocentric position of the named planet at the
// given time from the VSOP87 data in dir, in meters, with the circular orbit
// velocity at that distance. Note that the whole VSOP87 file is loaded on
// every call; callers seeding several bodies should cache per planet.
func HelioState(name string, dt time.Time, dir string) (pos, vel r3.Vec, err error) {
	jde := julian.TimeToJD(dt.UTC())
	if name == "Pluto" {
		// Special case in Sonia Keys' Meeus.
		l, b, r := pluto.Heliocentric(jde)
		return helioRV(l.Rad(), b.Rad(), r*AU)
	}
	var ibody int
	switch name {
	case "Mercury":
		ibody = planetposition.Mercury
	case "Venus":
		ibody = planetposition.Venus
	case "Earth":
		ibody = planetposition.Earth
	case "Mars":
		ibody = planetposition.Mars
	case "Jupiter":
		ibody = planetposition.Jupiter
	case "Saturn":
		ibody = planetposition.Saturn
	case "Uranus":
		ibody = planetposition.Uranus
	case "Neptune":
		ibody = planetposition.Neptune
	default:
		return pos, vel, fmt.Errorf("unknown object: %s", name)
	}
	planet, err := planetposition.LoadPlanetPath(ibody, dir)
	if err != nil {
		return pos, vel, fmt.Errorf("could not load planet %s: %w", name, err)
	}
	l, b, r := planet.Position2000(jde)
	return helioRV(l.Rad(), b.Rad(), r*AU)
}

// helioRV converts heliocentric L,B,R to Cartesian and points the circular
// orbit velocity along the prograde tangent.
func helioRV(l, b, r float64) (pos, vel r3.Vec, err error) {
	pos = Spherical2Cartesian(r, 0.5*math.Pi-b, l)
	v := CircularVelocity(G*SunMass, r)
	vel = r3.Scale(v, unit(r3.Cross(pos, r3.Vec{Z: -1})))
	return pos, vel, nil
}
