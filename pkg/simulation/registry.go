package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

// AgentRegistry is the append-only population of a Simulation.
// Agents are never removed, so Len never decreases.
type AgentRegistry struct {
	agents []behavior.Agent
}

// Append adds agents to the registry.
func (r *AgentRegistry) Append(agents ...behavior.Agent) {
	r.agents = append(r.agents, agents...)
}

// Len is the number of registered agents.
func (r *AgentRegistry) Len() int {
	return len(r.agents)
}

// At returns a copy of agent i.
func (r *AgentRegistry) At(i int) behavior.Agent {
	return r.agents[i]
}

// Set overwrites agent i. Only the apply pass of a tick calls it.
func (r *AgentRegistry) Set(i int, a behavior.Agent) error {
	if i < 0 || i >= len(r.agents) {
		return fmt.Errorf("agent index %d out of range [0,%d)", i, len(r.agents))
	}
	r.agents[i] = a
	return nil
}

// Snapshot returns a copy of every agent, safe to read while the registry changes.
func (r *AgentRegistry) Snapshot() []behavior.Agent {
	out := make([]behavior.Agent, len(r.agents))
	copy(out, r.agents)
	return out
}

// ObstacleRegistry is the append-only set of obstacles of a Simulation.
// Obstacles are immutable once registered.
type ObstacleRegistry struct {
	obstacles []behavior.Obstacle
}

// Append adds obstacles to the registry.
func (r *ObstacleRegistry) Append(obstacles ...behavior.Obstacle) {
	r.obstacles = append(r.obstacles, obstacles...)
}

// Len is the number of registered obstacles.
func (r *ObstacleRegistry) Len() int {
	return len(r.obstacles)
}

// Snapshot returns a copy of every obstacle.
func (r *ObstacleRegistry) Snapshot() []behavior.Obstacle {
	out := make([]behavior.Obstacle, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}
