package orbitviz

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
)

// G is the real gravitational constant in SI units.
const G = 6.67430e-11

// Config names every numerical knob of the simulation. The constants G,
// scale factors and force clamp take different values (and unit families)
// across the rendered variants of this model, so none of them is hardcoded:
// the two documented families are returned by Physical and Stylized.
type Config struct {
	G             float64 // gravitational constant
	MaxForce      float64 // force clamp ceiling (stability safeguard)
	DistanceScale float64 // one simulation space distance unit, in physical units
	PositionScale float64 // divides the position update (the SCALE constant)

	TrailCapacity int // points retained per body trail
	OrbitSamples  int // points per orbit guide circle

	// ClearTrailsOnReset also clears trails and recomputes orbit guides on
	// Reset. Default false: the rendered variants keep pre-reset history.
	ClearTrailsOnReset bool

	// VSOP87 enables ephemeris based initial planet states, loaded from
	// VSOP87Dir.
	VSOP87    bool
	VSOP87Dir string
}

// Physical returns the SI unit family: real G, positions integrated in
// meters, and the force clamp effectively disabled (real forces at planetary
// scale dwarf any useful ceiling).
func Physical() Config {
	return Config{
		G:             G,
		MaxForce:      math.Inf(1),
		DistanceScale: 1,
		PositionScale: 1,
		TrailCapacity: 1000,
		OrbitSamples:  360,
	}
}

// Stylized returns the scaled unit family used by the demo variants: real G
// against demo scale masses and distances, with the 1e-4 force clamp that
// keeps close encounters stable.
func Stylized() Config {
	return Config{
		G:             G,
		MaxForce:      1e-4,
		DistanceScale: 1,
		PositionScale: 1,
		TrailCapacity: 600,
		OrbitSamples:  64,
	}
}

// Validate rejects configurations that would break invariants at runtime.
func (c Config) Validate() error {
	if c.G <= 0 {
		return fmt.Errorf("config: G must be strictly positive (got %g)", c.G)
	}
	if c.MaxForce <= 0 {
		return fmt.Errorf("config: max force must be strictly positive (got %g)", c.MaxForce)
	}
	if c.DistanceScale <= 0 || c.PositionScale <= 0 {
		return fmt.Errorf("config: scale factors must be strictly positive (got %g, %g)", c.DistanceScale, c.PositionScale)
	}
	if c.TrailCapacity <= 0 {
		return fmt.Errorf("config: %w", ErrZeroTrailCapacity)
	}
	if c.OrbitSamples < 2 {
		return fmt.Errorf("config: orbit guides need at least 2 samples (got %d)", c.OrbitSamples)
	}
	return nil
}

// LoadConfig reads conf.toml from the provided directory. The file selects a
// preset family by name and may override any of its parameters:
//
//	[simulation]
//	preset = "physical" # or "stylized"
//	max_force = 2e-4
//
//	[trails]
//	capacity = 1500
//	clear_on_reset = true
//
//	[orbits]
//	samples = 128
//
//	[VSOP87]
//	enabled = true
//	directory = "./vsop87"
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/conf.toml: %w", path, err)
	}

	var cfg Config
	switch preset := v.GetString("simulation.preset"); preset {
	case "", "physical":
		cfg = Physical()
	case "stylized":
		cfg = Stylized()
	default:
		return Config{}, fmt.Errorf("unknown preset %q (want \"physical\" or \"stylized\")", preset)
	}

	if v.IsSet("simulation.G") {
		cfg.G = v.GetFloat64("simulation.G")
	}
	if v.IsSet("simulation.max_force") {
		cfg.MaxForce = v.GetFloat64("simulation.max_force")
	}
	if v.IsSet("simulation.distance_scale") {
		cfg.DistanceScale = v.GetFloat64("simulation.distance_scale")
	}
	if v.IsSet("simulation.position_scale") {
		cfg.PositionScale = v.GetFloat64("simulation.position_scale")
	}
	if v.IsSet("trails.capacity") {
		cfg.TrailCapacity = v.GetInt("trails.capacity")
	}
	cfg.ClearTrailsOnReset = v.GetBool("trails.clear_on_reset")
	if v.IsSet("orbits.samples") {
		cfg.OrbitSamples = v.GetInt("orbits.samples")
	}
	cfg.VSOP87 = v.GetBool("VSOP87.enabled")
	cfg.VSOP87Dir = v.GetString("VSOP87.directory")

	return cfg, cfg.Validate()
}
