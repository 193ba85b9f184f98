package core

import (
	"fmt"
	"math"
)

// seedTiers is the multiset a fresh cell level is drawn from: half the cells
// start idle, a third at tier 1 and a sixth at tier 2.
var seedTiers = [...]int{0, 0, 0, 1, 1, 2}

// Cell is one square of the background contribution graph.
type Cell struct {
	X, Y  int
	Level int
}

// Grid is the fixed lattice of cells behind the play field. Levels only go up
// through Raise until the next reset.
type Grid struct {
	cells    []Cell
	size     int
	maxLevel int
	rnd      Random
}

// NewGrid lays a cell at every (cellSize+spacing) step that starts inside the
// field and seeds each level. It panics on a non-positive step or on fewer
// than one tier.
func NewGrid(fieldWidth, fieldHeight, cellSize, spacing, tiers int, rnd Random) *Grid {
	step := cellSize + spacing
	if step <= 0 || tiers < 1 {
		panic(fmt.Sprintf("core: invalid grid: step %d, %d tiers", step, tiers))
	}
	cols := (fieldWidth + step - 1) / step
	rows := (fieldHeight + step - 1) / step

	g := &Grid{
		cells:    make([]Cell, 0, cols*rows),
		size:     cellSize,
		maxLevel: tiers - 1,
		rnd:      rnd,
	}
	for y := 0; y < fieldHeight; y += step {
		for x := 0; x < fieldWidth; x += step {
			g.cells = append(g.cells, Cell{X: x, Y: y})
		}
	}
	g.ResetLevels()
	return g
}

// ResetLevels re-seeds every cell with the initial distribution.
func (g *Grid) ResetLevels() {
	for i := range g.cells {
		g.cells[i].Level = ClampInt(g.seedLevel(), 0, g.maxLevel)
	}
}

func (g *Grid) seedLevel() int {
	return seedTiers[g.rnd.Intn(len(seedTiers))]
}

// ApplyProximityEffect raises every cell whose origin lies strictly closer
// than radius to (cx, cy). It returns the number of cells in range, including
// ones already at the top tier.
func (g *Grid) ApplyProximityEffect(cx, cy, radius float64) int {
	hit := 0
	for i := range g.cells {
		c := &g.cells[i]
		if math.Hypot(float64(c.X)-cx, float64(c.Y)-cy) < radius {
			g.raise(i)
			hit++
		}
	}
	return hit
}

// ApplyScoreEffect raises count cells picked uniformly with replacement.
func (g *Grid) ApplyScoreEffect(count int) {
	if len(g.cells) == 0 {
		return
	}
	for n := 0; n < count; n++ {
		g.raise(g.rnd.Intn(len(g.cells)))
	}
}

func (g *Grid) raise(i int) {
	if g.cells[i].Level < g.maxLevel {
		g.cells[i].Level++
	}
}

func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}

// Cells returns a copy of the lattice.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Each calls fn for every cell in row-major order without copying.
func (g *Grid) Each(fn func(c Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

func (g *Grid) CellSize() int {
	return g.size
}

func (g *Grid) MaxLevel() int {
	return g.maxLevel
}
