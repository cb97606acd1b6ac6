package behavior

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// ErrSelfNotIncluded means an agent is missing from its own neighbourhood,
// which would leave the flocking means without a guaranteed member.
var ErrSelfNotIncluded = errors.New("agent missing from its own neighborhood")

// ClassifyByRange returns, for every threshold in ranges, the agents whose
// distance to point is <= that threshold. All partitions are filled in a
// single pass over agents and are independent of each other.
func ClassifyByRange(point geometry.Vector2D, agents []Agent, ranges ...float64) [][]Agent {
	parts := make([][]Agent, len(ranges))
	rangesSq := make([]float64, len(ranges))
	for i, r := range ranges {
		rangesSq[i] = r * r
	}

	for _, a := range agents {
		distSq := point.DistanceSquaredTo(a.Pos)
		for i, r := range ranges {
			if r >= 0 && distSq <= rangesSq[i] {
				parts[i] = append(parts[i], a)
			}
		}
	}
	return parts
}

// CollidingObstacles returns the obstacles whose trigger radius reaches point.
func CollidingObstacles(point geometry.Vector2D, obstacles []Obstacle) []Obstacle {
	var hits []Obstacle
	for _, o := range obstacles {
		trigger := o.TriggerRadius()
		if point.DistanceSquaredTo(o.Pos) <= trigger*trigger {
			hits = append(hits, o)
		}
	}
	return hits
}

// Neighborhood classifies agents around agents[self] into the visible and
// protected partitions and checks that the agent belongs to both.
func Neighborhood(self int, agents []Agent, s Settings) (visible, protected []Agent, err error) {
	if self < 0 || self >= len(agents) {
		return nil, nil, fmt.Errorf("agent %d of %d: %w", self, len(agents), ErrSelfNotIncluded)
	}
	me := agents[self]
	parts := ClassifyByRange(me.Pos, agents, s.VisibleRange, s.ProtectedRange)
	visible, protected = parts[0], parts[1]

	if !contains(visible, me) || !contains(protected, me) {
		return nil, nil, fmt.Errorf("agent %d at %s: %w", self, me.Pos, ErrSelfNotIncluded)
	}
	return visible, protected, nil
}

func contains(agents []Agent, a Agent) bool {
	for _, other := range agents {
		if other == a {
			return true
		}
	}
	return false
}
