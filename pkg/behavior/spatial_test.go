package behavior

import (
	"errors"
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

func agentAt(x, y float64) Agent {
	return Agent{Pos: geometry.Vector2D{X: x, Y: y}, Vel: geometry.Vector2D{X: 25}, TickScale: 10}
}

func TestClassifyByRange(t *testing.T) {
	agents := []Agent{
		agentAt(0, 0),
		agentAt(5, 0),    // protected and visible
		agentAt(10, 0),   // exactly on the protected boundary
		agentAt(60, 80),  // exactly on the visible boundary
		agentAt(100, 80), // out of range
	}

	parts := ClassifyByRange(geometry.Vector2D{}, agents, 100, 10)
	if len(parts) != 2 {
		t.Fatalf("expected 2 partitions, got %d", len(parts))
	}
	visible, protected := parts[0], parts[1]

	if len(visible) != 4 {
		t.Errorf("visible = %d agents; want 4", len(visible))
	}
	if len(protected) != 3 {
		t.Errorf("protected = %d agents; want 3", len(protected))
	}
	for _, a := range visible {
		if a.Pos.X == 100 {
			t.Errorf("agent at %v should be out of visible range", a.Pos)
		}
	}
}

func TestClassifyByRange_PartitionsAreIndependent(t *testing.T) {
	// A protected range larger than the visible one is not clipped.
	agents := []Agent{agentAt(0, 0), agentAt(30, 0)}
	parts := ClassifyByRange(geometry.Vector2D{}, agents, 10, 50)
	if len(parts[0]) != 1 || len(parts[1]) != 2 {
		t.Errorf("got %d/%d agents; want 1/2", len(parts[0]), len(parts[1]))
	}
}

func TestClassifyByRange_SelfInclusion(t *testing.T) {
	agents := []Agent{agentAt(-120, 33), agentAt(7, 7), agentAt(200, -200)}
	for _, r := range []float64{0, 0.5, 10, 100, math.MaxFloat64} {
		for i, a := range agents {
			parts := ClassifyByRange(a.Pos, agents, r, r)
			for p, part := range parts {
				if !contains(part, a) {
					t.Errorf("range %v partition %d misses agent %d", r, p, i)
				}
			}
		}
	}
}

func TestCollidingObstacles_TriggerRadius(t *testing.T) {
	obstacles := []Obstacle{{Pos: geometry.Vector2D{}, Radius: 20, Buffer: 2}}

	tests := []struct {
		name  string
		point geometry.Vector2D
		want  int
	}{
		{"centre", geometry.Vector2D{}, 1},
		{"inside buffer", geometry.Vector2D{X: 30}, 1},
		{"on boundary", geometry.Vector2D{X: 24, Y: 32}, 1},
		{"on boundary negative axis", geometry.Vector2D{Y: -40}, 1},
		{"just outside", geometry.Vector2D{X: 40.0001}, 0},
		{"far away", geometry.Vector2D{X: 300, Y: 300}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollidingObstacles(tt.point, obstacles)
			if len(got) != tt.want {
				t.Errorf("CollidingObstacles(%v) = %d obstacles; want %d", tt.point, len(got), tt.want)
			}
		})
	}
}

func TestNeighborhood(t *testing.T) {
	s := testSettings()
	agents := []Agent{agentAt(0, 0), agentAt(5, 0), agentAt(50, 0), agentAt(400, 0)}

	visible, protected, err := Neighborhood(0, agents, s)
	if err != nil {
		t.Fatalf("Neighborhood returned error: %v", err)
	}
	if len(visible) != 3 || len(protected) != 2 {
		t.Errorf("got %d visible / %d protected; want 3 / 2", len(visible), len(protected))
	}
}

func TestNeighborhood_SelfNotIncluded(t *testing.T) {
	agents := []Agent{agentAt(0, 0)}

	t.Run("index out of snapshot", func(t *testing.T) {
		_, _, err := Neighborhood(3, agents, testSettings())
		if !errors.Is(err, ErrSelfNotIncluded) {
			t.Errorf("error = %v; want ErrSelfNotIncluded", err)
		}
	})

	t.Run("negative range", func(t *testing.T) {
		s := testSettings()
		s.ProtectedRange = -1
		_, _, err := Neighborhood(0, agents, s)
		if !errors.Is(err, ErrSelfNotIncluded) {
			t.Errorf("error = %v; want ErrSelfNotIncluded", err)
		}
	})
}

func BenchmarkClassifyByRange(b *testing.B) {
	agents := make([]Agent, 1000)
	for i := range agents {
		agents[i] = agentAt(float64(i%250)-125, float64(i/4)-125)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ClassifyByRange(geometry.Vector2D{}, agents, 100, 10)
	}
}
