package core

import (
	"testing"
)

func newTestGrid(rnd Random) *Grid {
	cfg := DefaultConfig()
	return NewGrid(cfg.FieldWidth, cfg.FieldHeight, cfg.CellSize, cfg.CellSpacing, cfg.Tiers(), rnd)
}

func totalLevel(g *Grid) int {
	sum := 0
	g.Each(func(c Cell) { sum += c.Level })
	return sum
}

func TestNewGridLattice(t *testing.T) {
	g := newTestGrid(NewRandom(3))

	if g.Len() != 100*60 {
		t.Fatalf("grid has %d cells, want 6000", g.Len())
	}
	first, last := g.Cell(0), g.Cell(g.Len()-1)
	if first.X != 0 || first.Y != 0 {
		t.Errorf("first cell at (%d, %d)", first.X, first.Y)
	}
	if last.X != 990 || last.Y != 590 {
		t.Errorf("last cell at (%d, %d), want (990, 590)", last.X, last.Y)
	}
	if c := g.Cell(101); c.X != 10 || c.Y != 10 {
		t.Errorf("cell 101 at (%d, %d), want (10, 10)", c.X, c.Y)
	}
}

func TestNewGridSeedsLowTiersOnly(t *testing.T) {
	g := newTestGrid(NewRandom(11))

	counts := make(map[int]int)
	g.Each(func(c Cell) { counts[c.Level]++ })

	for level := range counts {
		if level < 0 || level > 2 {
			t.Fatalf("seeded level %d outside {0,1,2}", level)
		}
	}
	// 6000 draws: expect roughly 3000 / 2000 / 1000.
	if counts[0] < 2700 || counts[0] > 3300 {
		t.Errorf("tier 0 count %d far from 3000", counts[0])
	}
	if counts[2] < 800 || counts[2] > 1200 {
		t.Errorf("tier 2 count %d far from 1000", counts[2])
	}
}

func TestSeedLevelMapping(t *testing.T) {
	g := newTestGrid(&scriptedRandom{})
	g.rnd = &scriptedRandom{ints: []int{0, 1, 2, 3, 4, 5}}

	want := []int{0, 0, 0, 1, 1, 2}
	for i, w := range want {
		if got := g.seedLevel(); got != w {
			t.Errorf("draw %d seeded %d, want %d", i, got, w)
		}
	}
}

func TestApplyProximityEffectStrictRadius(t *testing.T) {
	g := newTestGrid(&scriptedRandom{})

	// Cells at (0,0), (30,40) and (50,0): distances 0, 50, 50 from origin
	// are handled with radius 50 exclusive.
	hit := g.ApplyProximityEffect(0, 0, 50)

	if c := g.Cell(0); c.Level != 1 {
		t.Errorf("origin cell level = %d, want 1", c.Level)
	}
	if c := g.Cell(5); c.X != 50 || c.Level != 0 {
		t.Errorf("cell (%d,%d) at radius distance raised to %d", c.X, c.Y, c.Level)
	}
	if c := g.Cell(4*100 + 3); c.X != 30 || c.Y != 40 || c.Level != 0 {
		t.Errorf("cell (%d,%d) at radius distance raised to %d", c.X, c.Y, c.Level)
	}
	if c := g.Cell(3*100 + 3); c.Level != 1 {
		t.Errorf("cell (%d,%d) inside radius not raised", c.X, c.Y)
	}

	raised := 0
	g.Each(func(c Cell) { raised += c.Level })
	if raised != hit {
		t.Errorf("raised %d levels but reported %d cells in range", raised, hit)
	}
}

func TestApplyProximityEffectSaturates(t *testing.T) {
	g := newTestGrid(&scriptedRandom{})
	for i := 0; i < 10; i++ {
		g.ApplyProximityEffect(500, 300, 50)
	}

	g.Each(func(c Cell) {
		if c.Level > g.MaxLevel() {
			t.Fatalf("cell (%d,%d) overflowed to %d", c.X, c.Y, c.Level)
		}
	})
	if c := g.Cell(30*100 + 50); c.Level != 4 {
		t.Errorf("centre cell level = %d, want 4", c.Level)
	}
}

func TestApplyProximityEffectKeepsTopTier(t *testing.T) {
	g := newTestGrid(&scriptedRandom{})
	g.cells[0].Level = g.MaxLevel()

	g.ApplyProximityEffect(0, 0, 50)
	if c := g.Cell(0); c.Level != g.MaxLevel() {
		t.Errorf("top-tier cell became %d", c.Level)
	}
}

func TestApplyScoreEffectPicksByIndex(t *testing.T) {
	g := newTestGrid(&scriptedRandom{})
	g.rnd = &scriptedRandom{ints: []int{7, 7, 42}}

	g.ApplyScoreEffect(3)

	if c := g.Cell(7); c.Level != 2 {
		t.Errorf("cell 7 level = %d, want 2", c.Level)
	}
	if c := g.Cell(42); c.Level != 1 {
		t.Errorf("cell 42 level = %d, want 1", c.Level)
	}
	if total := totalLevel(g); total != 3 {
		t.Errorf("total level = %d, want 3", total)
	}
}

func TestEffectsAreMonotonic(t *testing.T) {
	rnd := NewRandom(5)
	g := newTestGrid(rnd)

	for round := 0; round < 50; round++ {
		before := g.Cells()
		if round%2 == 0 {
			g.ApplyScoreEffect(20)
		} else {
			g.ApplyProximityEffect(float64(rnd.Intn(1000)), float64(rnd.Intn(600)), 50)
		}
		for i, c := range g.Cells() {
			if c.Level < before[i].Level {
				t.Fatalf("round %d: cell %d dropped from %d to %d", round, i, before[i].Level, c.Level)
			}
			if c.Level < 0 || c.Level > g.MaxLevel() {
				t.Fatalf("round %d: cell %d level %d out of range", round, i, c.Level)
			}
		}
	}
}

func TestResetLevelsReseeds(t *testing.T) {
	g := newTestGrid(NewRandom(8))
	for i := 0; i < 20; i++ {
		g.ApplyScoreEffect(2000)
	}

	g.ResetLevels()
	g.Each(func(c Cell) {
		if c.Level > 2 {
			t.Fatalf("cell (%d,%d) kept level %d after reset", c.X, c.Y, c.Level)
		}
	})
}

func TestNewGridRejectsDegenerateLattice(t *testing.T) {
	tests := []struct {
		name                     string
		cellSize, spacing, tiers int
	}{
		{"zero step", 0, 0, 5},
		{"negative step", 2, -4, 5},
		{"no tiers", 8, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewGrid did not panic")
				}
			}()
			NewGrid(100, 100, tt.cellSize, tt.spacing, tt.tiers, NewRandom(1))
		})
	}
}
