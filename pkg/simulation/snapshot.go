package simulation

import "github.com/lao-tseu-is-alive/go-boids/pkg/behavior"

// WorldSnapshot is the state handed to the UI after a tick. It owns its
// slices, so the receiver may keep it while the world moves on.
type WorldSnapshot struct {
	Agents    []behavior.Agent
	Obstacles []behavior.Obstacle
	Settings  behavior.Settings
	Ticks     int64
	// Err is set once the simulation has stopped on a fault.
	Err error
}

// AgentCount tolerates a nil snapshot.
func (s *WorldSnapshot) AgentCount() int {
	if s == nil {
		return 0
	}
	return len(s.Agents)
}

// ObstacleCount tolerates a nil snapshot.
func (s *WorldSnapshot) ObstacleCount() int {
	if s == nil {
		return 0
	}
	return len(s.Obstacles)
}

func snapshotOf(sim *Simulation, err error) *WorldSnapshot {
	return &WorldSnapshot{
		Agents:    sim.Agents.Snapshot(),
		Obstacles: sim.Obstacles.Snapshot(),
		Settings:  sim.Settings(),
		Ticks:     sim.Ticks(),
		Err:       err,
	}
}
