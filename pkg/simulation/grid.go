package simulation

import (
	"math"
	"slices"

	"github.com/lao-tseu-is-alive/go-boids/pkg/behavior"
)

type gridKey struct {
	x, y int
}

// spatialGrid buckets agent indices by square cells at least as wide as the
// largest neighbour range, so every neighbour of an agent lives in the 3x3
// block of cells around it.
type spatialGrid struct {
	cellSize float64
	cells    map[gridKey][]int
}

func newSpatialGrid() *spatialGrid {
	return &spatialGrid{cells: make(map[gridKey][]int)}
}

func cellSizeFor(s behavior.Settings) float64 {
	return max(s.VisibleRange, s.ProtectedRange, 10)
}

func (g *spatialGrid) key(x, y float64) gridKey {
	return gridKey{x: int(math.Floor(x / g.cellSize)), y: int(math.Floor(y / g.cellSize))}
}

// rebuild refills the cells, reusing their backing arrays.
func (g *spatialGrid) rebuild(agents []behavior.Agent, s behavior.Settings) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	g.cellSize = cellSizeFor(s)
	for i, a := range agents {
		k := g.key(a.Pos.X, a.Pos.Y)
		g.cells[k] = append(g.cells[k], i)
	}
}

// candidates returns the agents of the 3x3 block around agent i, in
// registry order, and the position of agent i within them.
func (g *spatialGrid) candidates(i int, agents []behavior.Agent) ([]behavior.Agent, int) {
	k := g.key(agents[i].Pos.X, agents[i].Pos.Y)
	var idx []int
	for x := k.x - 1; x <= k.x+1; x++ {
		for y := k.y - 1; y <= k.y+1; y++ {
			idx = append(idx, g.cells[gridKey{x: x, y: y}]...)
		}
	}
	slices.Sort(idx)

	self := -1
	pool := make([]behavior.Agent, len(idx))
	for n, j := range idx {
		pool[n] = agents[j]
		if j == i {
			self = n
		}
	}
	return pool, self
}
