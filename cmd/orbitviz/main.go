package main

import (
	"flag"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/ChristopherRabotin/orbitviz"
	kitlog "github.com/go-kit/log"
)

// Headless driver: builds a scenario, advances it for a fixed number of
// frames and optionally streams the trajectories for plotting.

var (
	confPath string
	scenario string
	steps    int
	dt       float64
	speed    float64
	export   string
	ndjson   bool
)

func init() {
	flag.StringVar(&confPath, "config", "", "directory holding conf.toml (empty: physical preset)")
	flag.StringVar(&scenario, "scenario", "solar", "scenario: solar, stylized or belt")
	flag.IntVar(&steps, "steps", 8766, "number of frames to advance")
	flag.Float64Var(&dt, "dt", 3600, "time step per frame, in simulation seconds")
	flag.Float64Var(&speed, "speed", 1, "speed multiplier")
	flag.StringVar(&export, "export", "", "trajectory output base name (empty: no export)")
	flag.BoolVar(&ndjson, "ndjson", false, "export NDJSON instead of CSV")
}

func main() {
	flag.Parse()

	var cfg orbitviz.Config
	var err error
	if confPath != "" {
		if cfg, err = orbitviz.LoadConfig(confPath); err != nil {
			log.Fatalf("%s: %s", confPath, err)
		}
	} else if scenario == "stylized" {
		cfg = orbitviz.Stylized()
	} else {
		cfg = orbitviz.Physical()
	}

	var scn orbitviz.Scenario
	switch scenario {
	case "solar":
		scn = orbitviz.InnerSolarSystem()
	case "stylized":
		scn = orbitviz.StylizedSystem()
	case "belt":
		scn = orbitviz.InnerSolarSystem()
		scn.Planets = append(scn.Planets, orbitviz.Belt(64, 4.04e11, 3e10, uint64(time.Now().UnixNano()))...)
	default:
		log.Fatalf("unknown scenario %q", scenario)
	}

	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	engine, err := orbitviz.NewEngine(cfg, scn.SunMass, scn.Planets, klog)
	if err != nil {
		log.Fatalf("engine: %s", err)
	}
	if err = engine.SetSpeedMultiplier(speed); err != nil {
		log.Fatalf("speed: %s", err)
	}

	var wg sync.WaitGroup
	var stateChan chan []orbitviz.State
	if export != "" {
		stateChan = make(chan []orbitviz.State, 1000) // a 1k entry buffer
		conf := orbitviz.ExportConfig{Filename: export, AsCSV: !ndjson, AsNDJSON: ndjson, Timestamp: true}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := orbitviz.StreamStates(conf, time.Now(), stateChan); err != nil {
				log.Fatalf("export: %s", err)
			}
		}()
		engine.SetStateHook(func(states []orbitviz.State) {
			stateChan <- states
		})
	}

	tick := steps / 10
	if tick == 0 {
		tick = 1
	}
	for i := 0; i < steps; i++ {
		if err := engine.Step(dt); err != nil {
			log.Fatalf("step %d: %s", i, err)
		}
		if i%tick == 0 {
			b := engine.Planet(0)
			klog.Log("level", "info", "subsys", "main", "frame", i, "elapsed(s)", engine.Elapsed(), "body", b.Name, "r(m)", cfg.DistanceScale*norm(b))
		}
	}

	if stateChan != nil {
		close(stateChan)
	}
	wg.Wait() // Don't return until we're done writing all the files.
	klog.Log("level", "notice", "subsys", "main", "status", "finished", "frames", steps, "simulated", (time.Duration(engine.Elapsed()) * time.Second).String())
}

func norm(b orbitviz.Body) float64 {
	p := b.Position
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}
