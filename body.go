package orbitviz

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNonPositiveMass is returned when constructing a body whose mass is zero
// or negative. Force to acceleration conversion divides by the mass, so this
// is rejected at construction and never checked again.
var ErrNonPositiveMass = errors.New("body mass must be strictly positive")

// Body defines a mass bearing point participating in gravity, either the
// central attractor or one of the orbiting bodies. Position and velocity are
// mutated on every integration step; everything else is fixed at construction.
type Body struct {
	Name string
	Mass float64
	// Position is in simulation space units (already scaled for the
	// renderer), Velocity in physical units per simulation time unit.
	Position r3.Vec
	Velocity r3.Vec
	// RotationSpeed is renderer metadata, carried through unmodified.
	RotationSpeed float64

	initPosition r3.Vec
	initVelocity r3.Vec
}

// NewBody returns a new body and snapshots its initial state for Reset.
func NewBody(name string, mass float64, pos, vel r3.Vec) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%s: %w (got %g)", name, ErrNonPositiveMass, mass)
	}
	return &Body{Name: name, Mass: mass, Position: pos, Velocity: vel, initPosition: pos, initVelocity: vel}, nil
}

// NewSun returns the central attractor, pinned at the origin.
func NewSun(mass float64) (*Body, error) {
	return NewBody("Sun", mass, r3.Vec{}, r3.Vec{})
}

// InitialPosition returns the position snapshot captured at construction.
func (b *Body) InitialPosition() r3.Vec { return b.initPosition }

// InitialVelocity returns the velocity snapshot captured at construction.
func (b *Body) InitialVelocity() r3.Vec { return b.initVelocity }

// reset restores position and velocity from the construction snapshot. The
// body itself is never destroyed or recreated.
func (b *Body) reset() {
	b.Position = b.initPosition
	b.Velocity = b.initVelocity
}

// String implements the Stringer interface.
func (b *Body) String() string {
	return b.Name + " body"
}

// Equals returns whether the provided body has the same identity and mass.
func (b *Body) Equals(o *Body) bool {
	return b.Name == o.Name && b.Mass == o.Mass
}
