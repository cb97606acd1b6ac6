package simulation

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// Spawner creates agents and obstacles from the configuration constants.
type Spawner struct {
	cfg *Config
	rng *rand.Rand
}

// NewSpawner uses rng for headings and initial positions. A nil rng gets a
// randomly seeded generator.
func NewSpawner(cfg *Config, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Spawner{cfg: cfg, rng: rng}
}

// NewAgent returns an agent at pos heading somewhere in [0, Pi) at InitSpeed.
func (sp *Spawner) NewAgent(pos geometry.Vector2D) behavior.Agent {
	angle := sp.rng.Float64() * math.Pi
	return behavior.Agent{
		Pos:       pos,
		Vel:       geometry.NewVectorPolar(sp.cfg.InitSpeed, angle),
		TickScale: sp.cfg.TickScale,
	}
}

// NewObstacle returns an obstacle at pos with the configured radius and buffer.
func (sp *Spawner) NewObstacle(pos geometry.Vector2D) behavior.Obstacle {
	return behavior.Obstacle{
		Pos:    pos,
		Radius: sp.cfg.ObstacleRadius,
		Buffer: sp.cfg.ObstacleBuffer,
	}
}

// Populate fills sim with the initial flock and obstacles. Agents start
// outside the edge buffer, obstacles fully on screen, on integer coordinates.
func (sp *Spawner) Populate(sim *Simulation) {
	halfW, halfH := sp.cfg.ScreenWidth/2, sp.cfg.ScreenHeight/2

	for i := 0; i < sp.cfg.NumAgents; i++ {
		pos := geometry.Vector2D{
			X: sp.intBetween(-halfW+sp.cfg.EdgeBuffer, halfW-sp.cfg.EdgeBuffer),
			Y: sp.intBetween(-halfH+sp.cfg.EdgeBuffer, halfH-sp.cfg.EdgeBuffer),
		}
		sim.Agents.Append(sp.NewAgent(pos))
	}

	for i := 0; i < sp.cfg.NumObstacles; i++ {
		pos := geometry.Vector2D{
			X: sp.intBetween(-halfW+sp.cfg.ObstacleRadius, halfW-sp.cfg.ObstacleRadius),
			Y: sp.intBetween(-halfH+sp.cfg.ObstacleRadius, halfH-sp.cfg.ObstacleRadius),
		}
		sim.Obstacles.Append(sp.NewObstacle(pos))
	}
}

// intBetween draws an integer in [lo, hi]; an empty interval collapses to its midpoint.
func (sp *Spawner) intBetween(lo, hi float64) float64 {
	a, b := int(math.Ceil(lo)), int(math.Floor(hi))
	if b < a {
		return math.Round((lo + hi) / 2)
	}
	return float64(a + sp.rng.IntN(b-a+1))
}
