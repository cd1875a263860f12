package orbitviz

import (
	"math"

	"github.com/go-kit/log"
	"gonum.org/v1/gonum/spatial/r3"
)

// separationε is the separation below which two bodies are considered
// coincident and the force computation degenerate.
const separationε = 1e-12

// ForceModel computes the gravitational pull of an attractor on a body.
// The computed force magnitude is capped at MaxForce: this is a stability
// safeguard against blow up during close encounters at large time steps, not
// a physical effect.
type ForceModel struct {
	G             float64 // gravitational constant, in the configured unit family
	MaxForce      float64 // force ceiling, same unit family
	DistanceScale float64 // simulation space distance unit, in physical distance units
	logger        log.Logger
}

// NewForceModel returns a force model for the provided unit family. A nil
// logger disables degeneracy diagnostics.
func NewForceModel(g, maxForce, distanceScale float64, logger log.Logger) ForceModel {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return ForceModel{G: g, MaxForce: maxForce, DistanceScale: distanceScale, logger: log.With(logger, "subsys", "force")}
}

// Acceleration returns the acceleration of body toward attractor. If the two
// bodies are coincident within tolerance, the zero vector is returned and a
// diagnostic is logged instead of dividing by zero.
func (fm ForceModel) Acceleration(attractor, body *Body) r3.Vec {
	sep := r3.Sub(attractor.Position, body.Position)
	d := r3.Norm(sep)
	if d < separationε {
		fm.logger.Log("level", "warning", "body", body.Name, "attractor", attractor.Name, "err", "near-zero separation, zero acceleration substituted")
		return r3.Vec{}
	}
	r := d * fm.DistanceScale
	f := fm.G * attractor.Mass * body.Mass / (r * r)
	f = math.Min(f, fm.MaxForce)
	return r3.Scale(f/(body.Mass*d), sep)
}
