package orbitviz

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestTrailCapacityInvariant(t *testing.T) {
	for _, c := range []int{0, -5} {
		if _, err := NewTrailBuffer(c); !errors.Is(err, ErrZeroTrailCapacity) {
			t.Fatalf("capacity %d accepted: %v", c, err)
		}
	}
}

func TestTrailEviction(t *testing.T) {
	tb, err := NewTrailBuffer(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 5; i++ {
		tb.Push(r3.Vec{X: float64(i)})
		if tb.Len() > tb.Cap() {
			t.Fatalf("length %d exceeded capacity %d", tb.Len(), tb.Cap())
		}
	}
	if tb.Len() != 3 {
		t.Fatalf("pushed capacity+2 points, have %d", tb.Len())
	}
	old := tb.Points(OldestFirst)
	for i, want := range []float64{3, 4, 5} {
		if old[i].X != want {
			t.Fatalf("chronological order broken: %+v", old)
		}
	}
	recent := tb.Points(NewestFirst)
	for i, want := range []float64{5, 4, 3} {
		if recent[i].X != want {
			t.Fatalf("newest-first order broken: %+v", recent)
		}
	}
}

func TestTrailPartialAndClear(t *testing.T) {
	tb, err := NewTrailBuffer(10)
	if err != nil {
		t.Fatal(err)
	}
	tb.Push(r3.Vec{X: 1})
	tb.Push(r3.Vec{X: 2})
	if pts := tb.Points(OldestFirst); len(pts) != 2 || pts[0].X != 1 || pts[1].X != 2 {
		t.Fatalf("partial buffer read-out wrong: %+v", pts)
	}
	tb.Clear()
	if tb.Len() != 0 || len(tb.Points(NewestFirst)) != 0 {
		t.Fatal("clear left points behind")
	}
	if tb.Cap() != 10 {
		t.Fatal("clear must not change capacity")
	}
}
