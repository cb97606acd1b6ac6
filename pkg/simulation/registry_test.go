package simulation

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

func TestAgentRegistry(t *testing.T) {
	var r AgentRegistry
	r.Append(at(1, 1), at(2, 2))
	r.Append(at(3, 3))

	if r.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", r.Len())
	}

	snap := r.Snapshot()
	snap[0].Pos = geometry.Vector2D{X: 99, Y: 99}
	if r.At(0).Pos.X != 1 {
		t.Error("mutating a snapshot changed the registry")
	}

	if err := r.Set(1, at(7, 7)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if r.At(1).Pos.X != 7 {
		t.Errorf("At(1) = %v after Set", r.At(1))
	}

	for _, i := range []int{-1, 3} {
		if err := r.Set(i, at(0, 0)); err == nil {
			t.Errorf("Set(%d) expected an out of range error", i)
		}
	}
}

func TestObstacleRegistry(t *testing.T) {
	var r ObstacleRegistry
	if r.Len() != 0 || len(r.Snapshot()) != 0 {
		t.Fatal("expected an empty registry")
	}

	r.Append(behavior.Obstacle{Radius: 20, Buffer: 2}, behavior.Obstacle{Radius: 5, Buffer: 1})
	snap := r.Snapshot()
	snap[0].Radius = 1
	if r.Len() != 2 || r.Snapshot()[0].Radius != 20 {
		t.Errorf("registry = %v", r.Snapshot())
	}
}
