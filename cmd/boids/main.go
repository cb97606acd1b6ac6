package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to a .json or .toml configuration file")
	seed := flag.Uint64("seed", 0, "random seed for the initial flock, 0 picks one")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.Fatalf("💥 cannot load config: %v", err)
		}
	}

	level := golog.InfoLevel
	if *debug {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	ctx := context.Background()
	system, err := actor.NewActorSystem("BoidsWorld",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatalf("💥 cannot create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatalf("💥 cannot start actor system: %v", err)
	}

	game, err := simulation.GetNewGame(ctx, cfg, system, rng)
	if err != nil {
		_ = system.Stop(ctx)
		log.Fatalf("💥 cannot create game: %v", err)
	}
	defer game.System.Stop(ctx)

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("Boids")
	logger.Infof("click spawns a %s, Tab switches, P shows the tuning panel, Space pauses", cfg.ClickMode)
	if err := ebiten.RunGame(game); err != nil {
		logger.Errorf("simulation stopped: %v", err)
		_ = game.System.Stop(ctx)
		os.Exit(1)
	}
}
