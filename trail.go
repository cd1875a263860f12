package orbitviz

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroTrailCapacity is returned when constructing a trail buffer without
// room for a single point.
var ErrZeroTrailCapacity = errors.New("trail capacity must be strictly positive")

// TrailOrder selects the read-out direction of a trail.
type TrailOrder uint8

const (
	// NewestFirst returns trail points from the most recent backwards.
	NewestFirst TrailOrder = iota
	// OldestFirst returns trail points chronologically.
	OldestFirst
)

// TrailBuffer holds the most recent positions of one body as a fixed capacity
// ring. Once full, every push evicts the oldest point. Capacity is fixed at
// construction.
type TrailBuffer struct {
	pts   []r3.Vec
	head  int // index of the next write
	count int
}

// NewTrailBuffer returns an empty trail holding at most capacity points.
func NewTrailBuffer(capacity int) (*TrailBuffer, error) {
	if capacity <= 0 {
		return nil, ErrZeroTrailCapacity
	}
	return &TrailBuffer{pts: make([]r3.Vec, capacity)}, nil
}

// Push appends a point, evicting the oldest one if the buffer is full.
func (t *TrailBuffer) Push(p r3.Vec) {
	t.pts[t.head] = p
	t.head = (t.head + 1) % len(t.pts)
	if t.count < len(t.pts) {
		t.count++
	}
}

// Len returns the number of stored points.
func (t *TrailBuffer) Len() int { return t.count }

// Cap returns the fixed capacity.
func (t *TrailBuffer) Cap() int { return len(t.pts) }

// Clear drops all stored points without reallocating.
func (t *TrailBuffer) Clear() {
	t.head = 0
	t.count = 0
}

// Points returns the stored points in the requested order, newest or oldest
// first, as a fresh slice suitable for rendering as a connected line.
func (t *TrailBuffer) Points(order TrailOrder) []r3.Vec {
	out := make([]r3.Vec, t.count)
	for i := 0; i < t.count; i++ {
		// head-1 is the newest entry.
		idx := (t.head - 1 - i + len(t.pts)*2) % len(t.pts)
		if order == NewestFirst {
			out[i] = t.pts[idx]
		} else {
			out[t.count-1-i] = t.pts[idx]
		}
	}
	return out
}
