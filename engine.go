package orbitviz

import (
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNegativeTimeStep is returned by Step for a retrograde time step.
	ErrNegativeTimeStep = errors.New("time step must not be negative")
	// ErrNegativeSpeed is returned by SetSpeedMultiplier for a negative factor.
	ErrNegativeSpeed = errors.New("speed multiplier must not be negative")
)

// PlanetSpec describes one orbiting body at construction.
//
// Either an explicit Position (simulation space units) or a Distance from the
// attractor (physical units) must be given. With a Distance and no Velocity,
// the body is inserted on a circular orbit: placed at that distance with the
// matching tangential speed, in the plane given by Inclination and RAAN
// (degrees). RotationSpeed is renderer metadata carried through unmodified.
type PlanetSpec struct {
	Name          string
	Mass          float64
	Position      r3.Vec
	Distance      float64
	Velocity      r3.Vec
	Inclination   float64
	RAAN          float64
	RotationSpeed float64
}

// State is a per body snapshot handed to the state hook after each advancing
// step. It replaces the per frame console logging of the rendered variants:
// with no hook installed, a step costs nothing in observability.
type State struct {
	Elapsed  float64 // simulation seconds since construction or last Reset
	Name     string
	Position r3.Vec
	Velocity r3.Vec
}

// StateHook receives the snapshots of all bodies, attractor first.
type StateHook func([]State)

// Engine owns the attractor, the ordered orbiting bodies, one trail per body
// and the precomputed orbit guides, and advances them all by one Step per
// frame. It is single threaded by design: the render loop is the only caller.
type Engine struct {
	cfg     Config
	sun     *Body
	planets []*Body
	specs   []PlanetSpec
	trails  []*TrailBuffer
	guides  [][]r3.Vec

	force ForceModel
	integ Euler

	speed      float64
	paused     bool
	showOrbits bool
	elapsed    float64

	hook   StateHook
	logger log.Logger
}

// NewEngine builds a simulation from the attractor mass and the ordered
// planet descriptors. Insertion order is preserved for the lifetime of the
// engine: it is the iteration order of Step and the index order of every
// accessor. A nil logger disables logging.
func NewEngine(cfg Config, sunMass float64, specs []PlanetSpec, logger log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	sun, err := NewSun(sunMass)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:        cfg,
		sun:        sun,
		specs:      specs,
		force:      NewForceModel(cfg.G, cfg.MaxForce, cfg.DistanceScale, logger),
		integ:      Euler{PositionScale: cfg.PositionScale},
		speed:      1,
		showOrbits: true,
		logger:     log.With(logger, "subsys", "engine"),
	}
	for _, s := range specs {
		pos, vel := s.initialState(cfg, sunMass)
		p, err := NewBody(s.Name, s.Mass, pos, vel)
		if err != nil {
			return nil, err
		}
		p.RotationSpeed = s.RotationSpeed
		trail, err := NewTrailBuffer(cfg.TrailCapacity)
		if err != nil {
			return nil, err
		}
		e.planets = append(e.planets, p)
		e.trails = append(e.trails, trail)
	}
	e.computeGuides()
	return e, nil
}

// initialState resolves the descriptor into simulation space position and
// physical velocity.
func (s PlanetSpec) initialState(cfg Config, sunMass float64) (pos, vel r3.Vec) {
	pos, vel = s.Position, s.Velocity
	if pos == (r3.Vec{}) && s.Distance > 0 {
		pos = r3.Vec{X: s.Distance / cfg.DistanceScale}
		if vel == (r3.Vec{}) {
			// Circular orbit insertion: tangential speed at that distance.
			vel = r3.Vec{Y: CircularVelocity(cfg.G*sunMass, s.Distance)}
		}
		if s.Inclination != 0 || s.RAAN != 0 {
			i, Ω := Deg2rad(s.Inclination), Deg2rad(s.RAAN)
			pos = Rot313Vec(0, -i, -Ω, pos)
			vel = Rot313Vec(0, -i, -Ω, vel)
		}
	}
	return
}

// computeGuides samples one orbit guide per planet from its current distance
// to the attractor. Guides are snapshots: they are only recomputed here.
func (e *Engine) computeGuides() {
	e.guides = make([][]r3.Vec, len(e.planets))
	for i, p := range e.planets {
		radius := r3.Norm(r3.Sub(p.Position, e.sun.Position))
		e.guides[i] = OrbitPath(e.sun.Position, radius, e.cfg.OrbitSamples, e.specs[i].Inclination, e.specs[i].RAAN)
	}
}

// Step advances every planet by the effective time step dt times the current
// speed multiplier, in insertion order, and appends the new positions to the
// trails. It is a no-op while paused or at speed zero. A negative dt is a
// caller contract violation.
func (e *Engine) Step(dt float64) error {
	if dt < 0 {
		return fmt.Errorf("%w (got %g)", ErrNegativeTimeStep, dt)
	}
	if e.paused || e.speed == 0 || dt == 0 {
		return nil
	}
	eff := dt * e.speed
	for i, p := range e.planets {
		acc := e.force.Acceleration(e.sun, p)
		e.integ.Step(p, acc, eff)
		e.trails[i].Push(p.Position)
	}
	e.elapsed += eff
	if e.hook != nil {
		e.hook(e.snapshot())
	}
	return nil
}

// Reset restores every body to its construction snapshot. Unless
// ClearTrailsOnReset is set, trails and orbit guides keep their pre-reset
// history, matching the rendered variants.
func (e *Engine) Reset() {
	e.sun.reset()
	for _, p := range e.planets {
		p.reset()
	}
	e.elapsed = 0
	if e.cfg.ClearTrailsOnReset {
		for _, t := range e.trails {
			t.Clear()
		}
		e.computeGuides()
	}
	e.logger.Log("level", "info", "status", "reset", "cleared", e.cfg.ClearTrailsOnReset)
}

// SetSpeedMultiplier scales the effective time step of subsequent Step calls.
// Zero is accepted and freezes planet motion like Pause.
func (e *Engine) SetSpeedMultiplier(factor float64) error {
	if factor < 0 {
		return fmt.Errorf("%w (got %g)", ErrNegativeSpeed, factor)
	}
	e.speed = factor
	return nil
}

// SpeedMultiplier returns the current speed multiplier.
func (e *Engine) SpeedMultiplier() float64 { return e.speed }

// Pause freezes planet motion. Reset and configuration calls still work.
func (e *Engine) Pause() { e.paused = true }

// Resume lifts a Pause.
func (e *Engine) Resume() { e.paused = false }

// Paused returns whether the engine is paused.
func (e *Engine) Paused() bool { return e.paused }

// SetShowOrbits toggles orbit guide visibility. Pure presentation state, kept
// here because the engine owns the precomputed guides the renderer queries.
func (e *Engine) SetShowOrbits(visible bool) { e.showOrbits = visible }

// ShowOrbits returns whether orbit guides should be drawn.
func (e *Engine) ShowOrbits() bool { return e.showOrbits }

// SetStateHook installs the per step snapshot callback. Pass nil to remove it.
func (e *Engine) SetStateHook(h StateHook) { e.hook = h }

// Elapsed returns the simulated seconds since construction or the last Reset.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// Sun returns a copy of the attractor's state.
func (e *Engine) Sun() Body { return *e.sun }

// NumPlanets returns the number of orbiting bodies.
func (e *Engine) NumPlanets() int { return len(e.planets) }

// Planet returns a copy of the i-th body's state, in insertion order. The
// renderer reads body state by index, it never writes through the engine.
func (e *Engine) Planet(i int) Body { return *e.planets[i] }

// Trail returns the i-th body's trail points in the requested order.
func (e *Engine) Trail(i int, order TrailOrder) []r3.Vec {
	return e.trails[i].Points(order)
}

// OrbitGuide returns the i-th body's precomputed orbit guide.
func (e *Engine) OrbitGuide(i int) []r3.Vec { return e.guides[i] }

func (e *Engine) snapshot() []State {
	out := make([]State, 0, len(e.planets)+1)
	out = append(out, State{e.elapsed, e.sun.Name, e.sun.Position, e.sun.Velocity})
	for _, p := range e.planets {
		out = append(out, State{e.elapsed, p.Name, p.Position, p.Velocity})
	}
	return out
}
