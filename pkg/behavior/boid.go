package behavior

import (
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// ErrNoNeighbors is returned when alignment, cohesion or separation is asked
// to average over an empty neighbourhood.
var ErrNoNeighbors = errors.New("no neighbors to average")

// Agent represents a single boid of the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// https://en.wikipedia.org/wiki/Boids
// Positions use a centre-origin, y-up frame.
type Agent struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	// TickScale divides the velocity when integrating the position.
	// Higher values mean a slower simulation for the same speed.
	TickScale float64
}

// Step advances the position by Vel / TickScale.
// A zero TickScale leaves the position unchanged and returns geometry.ErrDivideByZero.
func (a *Agent) Step() error {
	move, err := a.Vel.Div(a.TickScale)
	if err != nil {
		return fmt.Errorf("step: %w", err)
	}
	a.Pos = a.Pos.Add(move)
	return nil
}

// Speed is the norm of the velocity.
func (a Agent) Speed() float64 {
	return a.Vel.Len()
}

// Obstacle is a static disc the agents steer away from.
type Obstacle struct {
	Pos    geometry.Vector2D
	Radius float64
	// Buffer is the multiple of Radius at which agents start avoiding.
	Buffer float64
}

// TriggerRadius is Radius * Buffer.
func (o Obstacle) TriggerRadius() float64 {
	return o.Radius * o.Buffer
}

// Settings controls the flocking constants.
// The world replaces it between ticks, never during one.
type Settings struct {
	VisibleRange   float64 // alignment and cohesion neighbourhood
	ProtectedRange float64 // separation neighbourhood
	EdgeBuffer     float64 // distance from a screen edge that triggers avoidance

	AlignmentFactor  float64 // how much to match visible velocities
	CohesionFactor   float64 // how much to match visible positions
	SeparationFactor float64 // how much to move away from close boids
	EdgeFactor       float64 // how hard to avoid the edges
	ObstacleFactor   float64 // how hard to avoid the obstacles

	MinSpeed float64
	MaxSpeed float64

	ScreenWidth  float64
	ScreenHeight float64
}

// EdgeAvoidance pushes an agent back toward the centre when it is within
// EdgeBuffer of a screen edge. Each axis is handled on its own.
func EdgeAvoidance(pos geometry.Vector2D, s Settings) geometry.Vector2D {
	var d geometry.Vector2D
	halfW, halfH := s.ScreenWidth/2, s.ScreenHeight/2

	if pos.X > halfW-s.EdgeBuffer {
		d.X -= s.EdgeFactor
	}
	if pos.X < -halfW+s.EdgeBuffer {
		d.X += s.EdgeFactor
	}
	if pos.Y > halfH-s.EdgeBuffer {
		d.Y -= s.EdgeFactor
	}
	if pos.Y < -halfH+s.EdgeBuffer {
		d.Y += s.EdgeFactor
	}
	return d
}

// ObstacleAvoidance steers away from the mean position of the colliding
// obstacles. No obstacle means no contribution.
func ObstacleAvoidance(pos geometry.Vector2D, colliding []Obstacle, s Settings) geometry.Vector2D {
	centres := make([]geometry.Vector2D, len(colliding))
	for i, o := range colliding {
		centres[i] = o.Pos
	}
	mean, err := geometry.Mean(centres)
	if err != nil {
		return geometry.Vector2D{}
	}
	return mean.Sub(pos).Mul(-s.ObstacleFactor)
}

// Alignment nudges the velocity toward the mean velocity of the visible agents.
func Alignment(self Agent, visible []Agent, s Settings) (geometry.Vector2D, error) {
	vels := make([]geometry.Vector2D, len(visible))
	for i, a := range visible {
		vels[i] = a.Vel
	}
	mean, err := geometry.Mean(vels)
	if err != nil {
		return geometry.Vector2D{}, fmt.Errorf("alignment: %w", ErrNoNeighbors)
	}
	return mean.Sub(self.Vel).Mul(s.AlignmentFactor), nil
}

// Cohesion pulls the agent toward the mean position of the visible agents.
func Cohesion(self Agent, visible []Agent, s Settings) (geometry.Vector2D, error) {
	mean, err := geometry.Mean(positions(visible))
	if err != nil {
		return geometry.Vector2D{}, fmt.Errorf("cohesion: %w", ErrNoNeighbors)
	}
	return mean.Sub(self.Pos).Mul(s.CohesionFactor), nil
}

// Separation pushes the agent away from the mean position of the agents
// inside its protected range.
func Separation(self Agent, protected []Agent, s Settings) (geometry.Vector2D, error) {
	mean, err := geometry.Mean(positions(protected))
	if err != nil {
		return geometry.Vector2D{}, fmt.Errorf("separation: %w", ErrNoNeighbors)
	}
	return mean.Sub(self.Pos).Mul(-s.SeparationFactor), nil
}

// Steer sums the five steering contributions into the velocity delta of self.
// visible and protected are expected to contain self, so they are never empty
// for a well-formed snapshot.
func Steer(self Agent, visible, protected []Agent, colliding []Obstacle, s Settings) (geometry.Vector2D, error) {
	delta := EdgeAvoidance(self.Pos, s)
	delta = delta.Add(ObstacleAvoidance(self.Pos, colliding, s))

	align, err := Alignment(self, visible, s)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	cohere, err := Cohesion(self, visible, s)
	if err != nil {
		return geometry.Vector2D{}, err
	}
	separate, err := Separation(self, protected, s)
	if err != nil {
		return geometry.Vector2D{}, err
	}

	return delta.Add(align).Add(cohere).Add(separate), nil
}

func positions(agents []Agent) []geometry.Vector2D {
	pos := make([]geometry.Vector2D, len(agents))
	for i, a := range agents {
		pos[i] = a.Pos
	}
	return pos
}
