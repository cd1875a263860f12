package orbitviz

import "gonum.org/v1/gonum/spatial/r3"

// Euler advances bodies with the semi-implicit (symplectic) Euler scheme: the
// velocity is updated from the acceleration first, then the position from the
// updated velocity within the same step. Combined with the force clamp this
// stays visually stable at interactive frame rates; no substepping is done,
// accuracy is traded for simplicity.
type Euler struct {
	// PositionScale divides the position update, converting physical
	// velocity units into simulation space displacement (the SCALE factor).
	PositionScale float64
}

// Step mutates the body in place for one time step dt.
func (in Euler) Step(b *Body, acc r3.Vec, dt float64) {
	b.Velocity = r3.Add(b.Velocity, r3.Scale(dt, acc))
	b.Position = r3.Add(b.Position, r3.Scale(dt/in.PositionScale, b.Velocity))
}
