package orbitviz

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotationBasics(t *testing.T) {
	x := r3.Vec{X: 1}
	if got := mxV33(R3(math.Pi/2), x); !vectorsEqual(got, r3.Vec{Y: -1}) {
		t.Fatalf("R3(π/2)x̂ = %+v", got)
	}
	if got := mxV33(R1(math.Pi/2), r3.Vec{Y: 1}); !vectorsEqual(got, r3.Vec{Z: -1}) {
		t.Fatalf("R1(π/2)ŷ = %+v", got)
	}
	if got := mxV33(R2(math.Pi/2), r3.Vec{Z: 1}); !vectorsEqual(got, r3.Vec{X: -1}) {
		t.Fatalf("R2(π/2)ẑ = %+v", got)
	}
}

func TestRot313Vec(t *testing.T) {
	v := r3.Vec{X: 0.5, Y: -1.25, Z: 2}
	if got := Rot313Vec(0, 0, 0, v); !vectorsEqual(got, v) {
		t.Fatalf("identity rotation changed the vector: %+v", got)
	}
	// A rotation must preserve the norm.
	got := Rot313Vec(0.3, -0.7, 1.1, v)
	if math.Abs(r3.Norm(got)-r3.Norm(v)) > 1e-12 {
		t.Fatalf("norm not preserved: %f != %f", r3.Norm(got), r3.Norm(v))
	}
	// 3-1-3 with only the first and last angle set collapses to a single R3.
	if got, exp := Rot313Vec(0.4, 0, 0.2, v), mxV33(R3(0.6), v); !vectorsEqual(got, exp) {
		t.Fatalf("R3R1R3(θ1, 0, θ3) != R3(θ1+θ3): %+v vs %+v", got, exp)
	}
}
