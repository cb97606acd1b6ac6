package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-boids/pb"
	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor owns the Simulation. Its mailbox is processed one message at a
// time, so spawn and tuning commands always land between two ticks.
type WorldActor struct {
	sim     *Simulation
	spawner *Spawner
	cfg     *Config
	// Communication with UI
	snapshotCh chan<- *WorldSnapshot
	// fault stops the tick loop once a step has failed
	fault error
	// --- Benchmark Stats ---
	tickCount   int
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit. A nil rng gets a random seed.
func NewWorldActor(snapshotCh chan<- *WorldSnapshot, cfg *Config, rng *rand.Rand) *WorldActor {
	sim := NewSimulation(cfg.Settings(), cfg.Workers)
	if cfg.SpatialGrid {
		sim.EnableSpatialGrid()
	}
	return &WorldActor{
		sim:         sim,
		spawner:     NewSpawner(cfg, rng),
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World starting: %d boids, %d obstacles, %gx%g",
		w.cfg.NumAgents, w.cfg.NumObstacles, w.cfg.ScreenWidth, w.cfg.ScreenHeight)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		w.spawner.Populate(w.sim)
		ctx.Logger().Infof("World populated with %d boids", w.sim.Agents.Len())
		w.pushSnapshot()

	// The Main Simulation Step (Driven by Game Loop)
	case *pb.Tick:
		if w.fault != nil {
			return
		}
		if err := w.sim.Step(); err != nil {
			w.fault = err
			ctx.Logger().Errorf("simulation halted: %v", err)
		} else {
			w.tickCount++
			w.logBenchmarks(ctx)
		}
		w.pushSnapshot()

	case *pb.SpawnAgent:
		w.sim.Agents.Append(w.spawner.NewAgent(geometry.Vector2D{X: msg.GetX(), Y: msg.GetY()}))
		ctx.Logger().Debugf("boid spawned at (%.1f, %.1f)", msg.GetX(), msg.GetY())

	case *pb.SpawnObstacle:
		w.sim.Obstacles.Append(w.spawner.NewObstacle(geometry.Vector2D{X: msg.GetX(), Y: msg.GetY()}))
		ctx.Logger().Debugf("obstacle spawned at (%.1f, %.1f)", msg.GetX(), msg.GetY())

	// Handle dynamic slider updates from UI
	case *pb.UpdateSettings:
		if err := w.sim.SetSettings(settingsFromProto(w.sim.Settings(), msg)); err != nil {
			ctx.Logger().Warnf("settings update ignored: %v", err)
		}

	case *pb.GetStats:
		lo, hi := w.sim.SpeedRange()
		ctx.Response(&pb.Stats{
			Ticks:     w.sim.Ticks(),
			Agents:    int32(w.sim.Agents.Len()),
			Obstacles: int32(w.sim.Obstacles.Len()),
			MinSpeed:  lo,
			MaxSpeed:  hi,
		})

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("World stopped after %d ticks", w.sim.Ticks())
	return nil
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		lo, hi := w.sim.SpeedRange()
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Boids: %d | Obstacles: %d | Speed: [%.2f, %.2f]",
			w.tickCount, w.sim.Agents.Len(), w.sim.Obstacles.Len(), lo, hi)
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- snapshotOf(w.sim, w.fault):
	default:
		// UI busy, skip frame
	}
}

// settingsFromProto keeps the screen geometry of cur and takes every tunable
// value from msg.
func settingsFromProto(cur behavior.Settings, msg *pb.UpdateSettings) behavior.Settings {
	cur.VisibleRange = msg.GetVisibleRange()
	cur.ProtectedRange = msg.GetProtectedRange()
	cur.EdgeBuffer = msg.GetEdgeBuffer()
	cur.AlignmentFactor = msg.GetAlignmentFactor()
	cur.CohesionFactor = msg.GetCohesionFactor()
	cur.SeparationFactor = msg.GetSeparationFactor()
	cur.EdgeFactor = msg.GetEdgeFactor()
	cur.ObstacleFactor = msg.GetObstacleFactor()
	cur.MinSpeed = msg.GetMinSpeed()
	cur.MaxSpeed = msg.GetMaxSpeed()
	return cur
}

// settingsToProto is the inverse of settingsFromProto.
func settingsToProto(s behavior.Settings) *pb.UpdateSettings {
	return &pb.UpdateSettings{
		VisibleRange:     s.VisibleRange,
		ProtectedRange:   s.ProtectedRange,
		EdgeBuffer:       s.EdgeBuffer,
		AlignmentFactor:  s.AlignmentFactor,
		CohesionFactor:   s.CohesionFactor,
		SeparationFactor: s.SeparationFactor,
		EdgeFactor:       s.EdgeFactor,
		ObstacleFactor:   s.ObstacleFactor,
		MinSpeed:         s.MinSpeed,
		MaxSpeed:         s.MaxSpeed,
	}
}
