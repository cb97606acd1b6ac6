package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to a .json or .toml configuration file")
	ticks := flag.Int("ticks", 1000, "number of ticks to run")
	seed := flag.Uint64("seed", 1, "random seed for the initial flock")
	workers := flag.Int("workers", 0, "goroutines for the neighbour pass, 0 keeps the configured value")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatalf("💥 cannot load config: %v", err)
		}
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	logger := golog.New(golog.InfoLevel, os.Stdout)

	sim := simulation.NewSimulation(cfg.Settings(), cfg.Workers)
	if cfg.SpatialGrid {
		sim.EnableSpatialGrid()
	}
	simulation.NewSpawner(cfg, rand.New(rand.NewPCG(*seed, *seed))).Populate(sim)
	logger.Infof("running %d ticks: %d boids, %d obstacles, %d workers",
		*ticks, sim.Agents.Len(), sim.Obstacles.Len(), cfg.Workers)

	start := time.Now()
	report := max(*ticks/10, 1)
	for i := 1; i <= *ticks; i++ {
		if err := sim.Step(); err != nil {
			logger.Errorf("simulation halted: %v", err)
			os.Exit(1)
		}
		if i%report == 0 {
			lo, hi := sim.SpeedRange()
			logger.Infof("tick %d | boids: %d | speed: [%.3f, %.3f]", i, sim.Agents.Len(), lo, hi)
		}
	}

	elapsed := time.Since(start)
	logger.Infof("📊 %d ticks in %s (%.1f ticks/sec)", sim.Ticks(), elapsed, float64(sim.Ticks())/elapsed.Seconds())
}
