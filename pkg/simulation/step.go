package simulation

import (
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// Simulation owns the flock and advances it one tick at a time.
// It is not safe for concurrent use: the WorldActor serialises every call.
type Simulation struct {
	Agents    AgentRegistry
	Obstacles ObstacleRegistry

	settings behavior.Settings
	workers  int
	grid     *spatialGrid
	ticks    int64
}

// NewSimulation creates an empty simulation. workers < 1 is treated as 1.
func NewSimulation(settings behavior.Settings, workers int) *Simulation {
	if workers < 1 {
		workers = 1
	}
	return &Simulation{settings: settings, workers: workers}
}

// Settings returns the flocking constants used by the next tick.
func (s *Simulation) Settings() behavior.Settings {
	return s.settings
}

// SetSettings replaces the flocking constants. It must be called between ticks.
// Every field must be finite except MaxSpeed, which may be +Inf to lift the
// upper speed bound.
func (s *Simulation) SetSettings(settings behavior.Settings) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"screen width", settings.ScreenWidth},
		{"screen height", settings.ScreenHeight},
		{"visible range", settings.VisibleRange},
		{"protected range", settings.ProtectedRange},
		{"edge buffer", settings.EdgeBuffer},
		{"alignment factor", settings.AlignmentFactor},
		{"cohesion factor", settings.CohesionFactor},
		{"separation factor", settings.SeparationFactor},
		{"edge factor", settings.EdgeFactor},
		{"obstacle factor", settings.ObstacleFactor},
		{"min speed", settings.MinSpeed},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %g", ErrInvalidConfig, f.name, f.value)
		}
	}
	if math.IsNaN(settings.MaxSpeed) {
		return fmt.Errorf("%w: max speed is NaN", ErrInvalidConfig)
	}
	if settings.MinSpeed <= 0 || settings.MinSpeed > settings.MaxSpeed {
		return fmt.Errorf("%w: speed range [%g, %g]", ErrInvalidConfig, settings.MinSpeed, settings.MaxSpeed)
	}
	if settings.VisibleRange < 0 || settings.ProtectedRange < 0 {
		return fmt.Errorf("%w: negative neighbour range", ErrInvalidConfig)
	}
	if settings.EdgeBuffer < 0 {
		return fmt.Errorf("%w: negative edge buffer", ErrInvalidConfig)
	}
	s.settings = settings
	return nil
}

// EnableSpatialGrid restricts the neighbour search to nearby grid cells.
// The resulting neighbourhoods are identical to the exhaustive search.
func (s *Simulation) EnableSpatialGrid() {
	if s.grid == nil {
		s.grid = newSpatialGrid()
	}
}

// Ticks is the number of completed steps.
func (s *Simulation) Ticks() int64 {
	return s.ticks
}

// ComputeDeltas runs the read-only pass of a tick: the velocity delta of
// every agent, computed from the current state. Nothing is mutated.
func (s *Simulation) ComputeDeltas() ([]geometry.Vector2D, error) {
	return s.computeDeltas(s.Agents.Snapshot(), s.Obstacles.Snapshot())
}

func (s *Simulation) computeDeltas(agents []behavior.Agent, obstacles []behavior.Obstacle) ([]geometry.Vector2D, error) {
	deltas := make([]geometry.Vector2D, len(agents))
	if s.grid != nil {
		s.grid.rebuild(agents, s.settings)
	}

	steer := func(i int) error {
		pool, self := agents, i
		if s.grid != nil {
			pool, self = s.grid.candidates(i, agents)
		}
		visible, protected, err := behavior.Neighborhood(self, pool, s.settings)
		if err != nil {
			return fmt.Errorf("agent %d: %w", i, err)
		}
		colliding := behavior.CollidingObstacles(agents[i].Pos, obstacles)
		d, err := behavior.Steer(agents[i], visible, protected, colliding, s.settings)
		if err != nil {
			return fmt.Errorf("agent %d: %w", i, err)
		}
		deltas[i] = d
		return nil
	}

	if s.workers == 1 || len(agents) < 2*s.workers {
		for i := range agents {
			if err := steer(i); err != nil {
				return nil, err
			}
		}
		return deltas, nil
	}

	// each worker owns the indices congruent to w, so writes never overlap
	var g errgroup.Group
	for w := 0; w < s.workers; w++ {
		g.Go(func() error {
			for i := w; i < len(agents); i += s.workers {
				if err := steer(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return deltas, nil
}

// Step runs one tick. Every delta is computed from the pre-tick state before
// any agent is touched; then each velocity is nudged, clamped to
// [MinSpeed, MaxSpeed] and integrated into the position. On error no agent
// is modified.
func (s *Simulation) Step() error {
	agents := s.Agents.Snapshot()
	deltas, err := s.computeDeltas(agents, s.Obstacles.Snapshot())
	if err != nil {
		return fmt.Errorf("tick %d: %w", s.ticks+1, err)
	}

	for i := range agents {
		a := &agents[i]
		a.Vel, err = a.Vel.Add(deltas[i]).ClampNorm(s.settings.MinSpeed, s.settings.MaxSpeed)
		if err != nil {
			return fmt.Errorf("tick %d: agent %d: %w", s.ticks+1, i, err)
		}
		if err := a.Step(); err != nil {
			return fmt.Errorf("tick %d: agent %d: %w", s.ticks+1, i, err)
		}
	}

	for i, a := range agents {
		if err := s.Agents.Set(i, a); err != nil {
			return err
		}
	}
	s.ticks++
	return nil
}

// SpeedRange returns the smallest and largest agent speed, or zeros for an
// empty flock.
func (s *Simulation) SpeedRange() (lo, hi float64) {
	n := s.Agents.Len()
	if n == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), 0
	for i := 0; i < n; i++ {
		v := s.Agents.At(i).Speed()
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
