package orbitviz

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func mustBody(t *testing.T, name string, mass float64, pos r3.Vec) *Body {
	t.Helper()
	b, err := NewBody(name, mass, pos, r3.Vec{})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestAccelerationMagnitudeAndDirection(t *testing.T) {
	fm := NewForceModel(1, math.Inf(1), 1, nil)
	sun := mustBody(t, "Sun", 1000, r3.Vec{})
	b := mustBody(t, "p", 2, r3.Vec{X: 100})
	acc := fm.Acceleration(sun, b)
	// a = G*M/r² regardless of the body's own mass.
	if !scalar.EqualWithinAbs(r3.Norm(acc), 0.1, 1e-12) {
		t.Fatalf("|a| = %g, want 0.1", r3.Norm(acc))
	}
	if acc.X >= 0 || acc.Y != 0 || acc.Z != 0 {
		t.Fatalf("acceleration must point from the body toward the attractor: %+v", acc)
	}
}

func TestAccelerationDistanceScale(t *testing.T) {
	// 10 simulation units at scale 10 is 100 physical units.
	scaled := NewForceModel(1, math.Inf(1), 10, nil)
	raw := NewForceModel(1, math.Inf(1), 1, nil)
	sun := mustBody(t, "Sun", 1000, r3.Vec{})
	near := mustBody(t, "p", 2, r3.Vec{X: 10})
	far := mustBody(t, "q", 2, r3.Vec{X: 100})
	if a, b := r3.Norm(scaled.Acceleration(sun, near)), r3.Norm(raw.Acceleration(sun, far)); !scalar.EqualWithinAbs(a, b, 1e-15) {
		t.Fatalf("distance scale not applied: %g != %g", a, b)
	}
}

func TestForceClamp(t *testing.T) {
	const maxForce = 1e-4
	fm := NewForceModel(G, maxForce, 1, nil)
	sun := mustBody(t, "Sun", 2e6, r3.Vec{})
	b := mustBody(t, "grazer", 3, r3.Vec{X: 0.01})
	unclamped := G * sun.Mass * b.Mass / (0.01 * 0.01)
	if unclamped <= maxForce {
		t.Fatalf("test setup broken: unclamped force %g under the ceiling", unclamped)
	}
	acc := fm.Acceleration(sun, b)
	if !scalar.EqualWithinAbs(r3.Norm(acc)*b.Mass, maxForce, 1e-18) {
		t.Fatalf("clamped force = %g, want exactly %g", r3.Norm(acc)*b.Mass, maxForce)
	}
}

func TestNearZeroSeparation(t *testing.T) {
	fm := NewForceModel(G, 1e-4, 1, nil)
	sun := mustBody(t, "Sun", 2e6, r3.Vec{X: 5})
	b := mustBody(t, "merged", 1, r3.Vec{X: 5})
	if acc := fm.Acceleration(sun, b); acc != (r3.Vec{}) {
		t.Fatalf("coincident bodies must yield zero acceleration, got %+v", acc)
	}
}
