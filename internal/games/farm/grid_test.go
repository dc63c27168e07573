package farm

import (
	"testing"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
)

func testCatalog() *Catalog {
	return CatalogFromConfig([]config.PlantConfig{
		{Name: "turnip", SproutTime: 0, GrowTime: 10, WaterUsage: 1, SproutGlyph: "v", MatureGlyph: "O", Color: "white"},
		{Name: "tomato", SproutTime: 2, GrowTime: 3, WaterUsage: 0, SproutGlyph: "y", MatureGlyph: "@", Color: "red"},
	})
}

// testGrid is a 2x4 grid whose cells sit at x = 62.5, 87.5, 112.5, 137.5
// and y = 87.5, 112.5 with 20-unit cell rects.
func testGrid() *Grid {
	return NewGrid(core.V(100, 100), 100, 50, 2, 4, 20)
}

func matureCell(t *testing.T, kind *PlantType) *Cell {
	t.Helper()
	c := newCell(core.V(0, 0), 32)
	if !c.Plant(kind) {
		t.Fatal("Plant on empty cell should succeed")
	}
	c.Water(100)
	c.Advance(kind.SproutTime() + kind.GrowTime())
	if !c.Crop().Mature() {
		t.Fatal("Expected mature plant")
	}
	return &c
}

func TestCellPlantOccupied(t *testing.T) {
	cat := testCatalog()
	c := newCell(core.V(0, 0), 32)
	c.Plant(cat.Get(0))
	c.Water(5)
	c.Advance(3)
	before := *c.Crop()

	if c.Plant(cat.Get(1)) {
		t.Error("Plant on occupied cell should report no change")
	}
	after := *c.Crop()
	if after.Kind() != before.Kind() || after.Counter() != before.Counter() {
		t.Errorf("Existing plant changed: %+v -> %+v", before, after)
	}
}

func TestCellPull(t *testing.T) {
	cat := testCatalog()

	t.Run("mature scores and empties", func(t *testing.T) {
		c := matureCell(t, cat.Get(1))
		var score Score
		c.Pull(&score)
		if score != HarvestPoints {
			t.Errorf("Expected %d points, got %d", HarvestPoints, score)
		}
		if !c.Empty() {
			t.Error("Cell should be empty after pull")
		}
	})

	t.Run("immature empties without points", func(t *testing.T) {
		c := newCell(core.V(0, 0), 32)
		c.Plant(cat.Get(0))
		var score Score
		c.Pull(&score)
		c.Pull(&score)
		if score != 0 {
			t.Errorf("Expected no points, got %d", score)
		}
		if !c.Empty() {
			t.Error("Cell should be empty after pull")
		}
	})

	t.Run("immature pays when configured", func(t *testing.T) {
		c := newCell(core.V(0, 0), 32)
		c.rewardImmaturePull = true
		c.Plant(cat.Get(0))
		var score Score
		c.Pull(&score)
		if score != HarvestPoints {
			t.Errorf("Expected %d points, got %d", HarvestPoints, score)
		}
	})

	t.Run("empty cell is a no-op", func(t *testing.T) {
		c := newCell(core.V(0, 0), 32)
		var score Score
		if c.Pull(&score) {
			t.Error("Pulling an empty cell should report no change")
		}
	})
}

func TestCellHarvest(t *testing.T) {
	cat := testCatalog()

	t.Run("repeatable stays", func(t *testing.T) {
		c := matureCell(t, cat.Get(1))
		var score Score
		if !c.Harvest(&score) {
			t.Fatal("Harvest should succeed")
		}
		if score != HarvestPoints {
			t.Errorf("Expected %d points, got %d", HarvestPoints, score)
		}
		if c.Empty() {
			t.Fatal("Repeatable crop should stay in the cell")
		}
		if c.Crop().Counter() != 2 {
			t.Errorf("Expected counter reset to 2, got %v", c.Crop().Counter())
		}
	})

	t.Run("one-shot is removed", func(t *testing.T) {
		c := matureCell(t, cat.Get(0))
		var score Score
		c.Harvest(&score)
		if score != HarvestPoints {
			t.Errorf("Expected %d points, got %d", HarvestPoints, score)
		}
		if !c.Empty() {
			t.Error("One-shot crop should be removed")
		}
	})

	t.Run("immature is untouched", func(t *testing.T) {
		c := newCell(core.V(0, 0), 32)
		c.Plant(cat.Get(0))
		var score Score
		if c.Harvest(&score) {
			t.Error("Immature harvest should report no change")
		}
		if c.Empty() || score != 0 {
			t.Error("Immature harvest should leave plant and score alone")
		}
	})
}

func TestCellWaterDoesNotStack(t *testing.T) {
	c := newCell(core.V(0, 0), 32)
	if !c.Water(5) {
		t.Fatal("Watering dry soil should succeed")
	}
	if c.Water(8) {
		t.Error("Watering wet soil should report no change")
	}
	if c.WaterLevel() != 5 {
		t.Errorf("Expected water level 5, got %v", c.WaterLevel())
	}
}

func TestCellSteal(t *testing.T) {
	c := newCell(core.V(0, 0), 32)
	c.Plant(testCatalog().Get(0))
	if !c.Steal() || !c.Empty() {
		t.Error("Steal should empty the cell")
	}
	if c.Steal() {
		t.Error("Stealing from an empty cell should report no change")
	}
}

func TestGrowthStopsWhenDry(t *testing.T) {
	g := testGrid()
	kind := testType(0, 10, 1)
	q := g.Cell(0).Rect()

	g.PlantAt(kind, q)
	g.WaterAt(5, q)
	g.Advance(5)

	c := g.Cell(0)
	if c.Crop().Counter() != 5 {
		t.Errorf("Expected counter 5, got %v", c.Crop().Counter())
	}
	if c.WaterLevel() != 0 {
		t.Errorf("Expected moisture 0, got %v", c.WaterLevel())
	}

	g.Advance(5)
	if c.Crop().Counter() != 5 {
		t.Errorf("Growth should halt without moisture, counter %v", c.Crop().Counter())
	}
}

func TestNewGridLayout(t *testing.T) {
	g := testGrid()
	if g.Len() != 8 {
		t.Fatalf("Expected 8 cells, got %d", g.Len())
	}

	tests := []struct {
		index int
		want  core.Vec2
	}{
		{0, core.V(62.5, 87.5)},
		{3, core.V(137.5, 87.5)},
		{5, core.V(87.5, 112.5)},
		{7, core.V(137.5, 112.5)},
	}
	for _, tt := range tests {
		if got := g.Cell(tt.index).Pos(); got != tt.want {
			t.Errorf("cell %d: expected %v, got %v", tt.index, tt.want, got)
		}
	}

	r := g.Cell(0).Rect()
	if r.W != 20 || r.H != 20 || r.Center() != g.Cell(0).Pos() {
		t.Errorf("Cell rect should be 20x20 centered on pos, got %+v", r)
	}
}

func TestFindIntersecting(t *testing.T) {
	g := testGrid()

	tests := []struct {
		name  string
		query core.Rect
		want  int // -1 for none
	}{
		{"outside grid", core.NewRect(300, 300, 10, 10), -1},
		{"between cells", core.RectAround(core.V(75, 100), 2, 2), -1},
		{"single cell", core.RectAround(core.V(87.5, 112.5), 4, 4), 5},
		{"shared edge counts", core.NewRect(72.5, 85, 3, 3), 0},
		{"straddling picks first", core.RectAround(core.V(75, 87.5), 10, 4), 0},
		{"straddling rows picks first", core.RectAround(core.V(112.5, 100), 4, 10), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.FindIntersecting(tt.query)
			if tt.want < 0 {
				if got != nil {
					t.Errorf("Expected no cell, got %v", got.Pos())
				}
				return
			}
			if got != g.Cell(tt.want) {
				t.Errorf("Expected cell %d", tt.want)
			}
		})
	}
}

func TestGridActionsOutsideAreNoOps(t *testing.T) {
	g := testGrid()
	var score Score
	outside := core.NewRect(-100, -100, 5, 5)

	if g.PlantAt(testType(0, 1, 1), outside) {
		t.Error("PlantAt outside should report no change")
	}
	if g.WaterAt(5, outside) || g.HarvestAt(&score, outside) || g.PullAt(&score, outside) {
		t.Error("Actions outside the grid should report no change")
	}
	if g.Planted() != 0 || score != 0 {
		t.Error("Grid state changed by an out-of-grid action")
	}
}

func TestStealAtExactPosition(t *testing.T) {
	g := testGrid()
	kind := testType(0, 1, 1)
	pos := g.Cell(5).Pos()
	g.PlantAt(kind, g.Cell(5).Rect())

	if g.StealAt(pos.Add(core.V(0.5, 0))) {
		t.Error("StealAt should only match an exact cell center")
	}
	if !g.StealAt(pos) {
		t.Error("StealAt on the cell center should succeed")
	}
	if !g.Cell(5).Empty() {
		t.Error("Cell should be empty after theft")
	}
}

func TestCellsSnapshot(t *testing.T) {
	g := testGrid()
	kind := testType(2, 3, 0)
	g.PlantAt(kind, g.Cell(1).Rect())
	g.WaterAt(4, g.Cell(1).Rect())
	g.WaterAt(4, g.Cell(2).Rect())

	views := g.Cells()
	if len(views) != g.Len() {
		t.Fatalf("Expected %d views, got %d", g.Len(), len(views))
	}
	if !views[1].Planted || views[1].Stage != StageSeed || views[1].Species != "test" {
		t.Errorf("Unexpected view for planted cell: %+v", views[1])
	}
	if !views[1].Watered || !views[2].Watered || views[0].Watered {
		t.Error("Watered flags do not match")
	}
	if views[2].Planted {
		t.Error("Cell 2 should be empty")
	}

	g.Advance(3)
	if g.Cells()[1].Stage != StageSprout {
		t.Errorf("Expected sprout stage, got %v", g.Cells()[1].Stage)
	}
}
