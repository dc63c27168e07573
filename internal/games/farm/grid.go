package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// CellView is a read-only snapshot of one cell for rendering.
type CellView struct {
	Pos     core.Vec2
	Rect    core.Rect
	Watered bool
	Planted bool
	Stage   Stage // Valid only when Planted
	Species string
	Sprites Sprites
}

// Grid is a fixed rows x cols array of cells covering a rectangular planting
// area. Cells are stored row by row and looked up geometrically.
type Grid struct {
	bounds core.Rect
	rows   int
	cols   int
	cells  []Cell
}

// NewGrid partitions the width x height area centered on center into equal
// sub-rectangles and centers a cell of side cellSize in each.
func NewGrid(center core.Vec2, width, height float64, rows, cols int, cellSize float64) *Grid {
	rows = max(rows, 1)
	cols = max(cols, 1)
	bounds := core.RectAround(center, width, height)
	partW := width / float64(cols)
	partH := height / float64(rows)

	cells := make([]Cell, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			pos := core.V(
				bounds.X+partW*(float64(c)+0.5),
				bounds.Y+partH*(float64(r)+0.5),
			)
			cells = append(cells, newCell(pos, cellSize))
		}
	}

	return &Grid{
		bounds: bounds,
		rows:   rows,
		cols:   cols,
		cells:  cells,
	}
}

// SetRewardImmaturePull toggles whether pulling an unripe plant scores.
func (g *Grid) SetRewardImmaturePull(on bool) {
	for i := range g.cells {
		g.cells[i].rewardImmaturePull = on
	}
}

// Bounds returns the planting area.
func (g *Grid) Bounds() core.Rect { return g.bounds }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell at storage index i, or nil when out of range.
func (g *Grid) Cell(i int) *Cell {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return &g.cells[i]
}

// FindIntersecting returns the first cell in storage order whose rect
// overlaps or touches query. When the query straddles several cells the
// earliest one wins, not the nearest.
func (g *Grid) FindIntersecting(query core.Rect) *Cell {
	for i := range g.cells {
		if g.cells[i].rect.Touches(query) {
			return &g.cells[i]
		}
	}
	return nil
}

// PlantAt sows kind into the cell under query.
func (g *Grid) PlantAt(kind *PlantType, query core.Rect) bool {
	if c := g.FindIntersecting(query); c != nil {
		return c.Plant(kind)
	}
	return false
}

// WaterAt waters the cell under query.
func (g *Grid) WaterAt(portion float64, query core.Rect) bool {
	if c := g.FindIntersecting(query); c != nil {
		return c.Water(portion)
	}
	return false
}

// HarvestAt harvests the cell under query.
func (g *Grid) HarvestAt(score *Score, query core.Rect) bool {
	if c := g.FindIntersecting(query); c != nil {
		return c.Harvest(score)
	}
	return false
}

// PullAt pulls the plant from the cell under query.
func (g *Grid) PullAt(score *Score, query core.Rect) bool {
	if c := g.FindIntersecting(query); c != nil {
		return c.Pull(score)
	}
	return false
}

// StealAt empties the cell centered exactly at pos.
func (g *Grid) StealAt(pos core.Vec2) bool {
	for i := range g.cells {
		if g.cells[i].pos == pos {
			return g.cells[i].Steal()
		}
	}
	return false
}

// PlantedAt reports whether the cell centered exactly at pos holds a plant.
func (g *Grid) PlantedAt(pos core.Vec2) bool {
	for i := range g.cells {
		if g.cells[i].pos == pos {
			return g.cells[i].plant != nil
		}
	}
	return false
}

// Advance grows every cell by dt seconds.
func (g *Grid) Advance(dt float64) {
	for i := range g.cells {
		g.cells[i].Advance(dt)
	}
}

// Planted counts occupied cells.
func (g *Grid) Planted() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].plant != nil {
			n++
		}
	}
	return n
}

// Cells returns a snapshot of every cell in storage order.
func (g *Grid) Cells() []CellView {
	views := make([]CellView, len(g.cells))
	for i := range g.cells {
		c := &g.cells[i]
		v := CellView{
			Pos:     c.pos,
			Rect:    c.rect,
			Watered: c.Watered(),
		}
		if c.plant != nil {
			v.Planted = true
			v.Stage = c.plant.Stage()
			v.Species = c.plant.kind.name
			v.Sprites = c.plant.kind.sprites
		}
		views[i] = v
	}
	return views
}
