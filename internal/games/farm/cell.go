package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// Cell is one plantable slot of the grid: soil moisture plus at most one
// plant.
type Cell struct {
	pos   core.Vec2
	rect  core.Rect
	water float64
	plant *Plant

	rewardImmaturePull bool
}

func newCell(pos core.Vec2, size float64) Cell {
	return Cell{
		pos:  pos,
		rect: core.RectAround(pos, size, size),
	}
}

// Pos returns the cell center.
func (c *Cell) Pos() core.Vec2 { return c.pos }

// Rect returns the cell's bounding box used for spatial queries.
func (c *Cell) Rect() core.Rect { return c.rect }

// WaterLevel returns the remaining soil moisture.
func (c *Cell) WaterLevel() float64 { return c.water }

// Watered reports whether the soil can feed growth.
func (c *Cell) Watered() bool { return c.water > 0 }

// Crop returns the plant in the cell, or nil.
func (c *Cell) Crop() *Plant { return c.plant }

// Empty reports whether the cell holds no plant.
func (c *Cell) Empty() bool { return c.plant == nil }

// Plant sows kind into the cell. An occupied cell is left untouched.
func (c *Cell) Plant(kind *PlantType) bool {
	if c.plant != nil || kind == nil {
		return false
	}
	c.plant = NewPlant(kind)
	return true
}

// Pull removes the plant. Only a mature plant is rewarded unless immature
// pulls are configured to pay out. Pulling an empty cell does nothing.
func (c *Cell) Pull(score *Score) bool {
	if c.plant == nil {
		return false
	}
	if c.plant.Mature() || c.rewardImmaturePull {
		score.Add(HarvestPoints)
	}
	c.plant = nil
	return true
}

// Harvest collects a mature plant. One-shot species are removed afterwards,
// repeatable ones stay and regrow from their sprout stage.
func (c *Cell) Harvest(score *Score) bool {
	if c.plant == nil {
		return false
	}
	if !c.plant.Harvest(score) {
		return false
	}
	if !c.plant.kind.Repeatable() {
		c.plant = nil
	}
	return true
}

// Water wets dry soil. Wet soil does not accumulate more moisture.
func (c *Cell) Water(portion float64) bool {
	if c.water > 0 || portion <= 0 {
		return false
	}
	c.water = portion
	return true
}

// Steal empties the cell without scoring.
func (c *Cell) Steal() bool {
	if c.plant == nil {
		return false
	}
	c.plant = nil
	return true
}

// Advance grows the plant, if any, on the cell's moisture.
func (c *Cell) Advance(dt float64) {
	if c.plant != nil {
		c.plant.Advance(dt, &c.water)
	}
}
