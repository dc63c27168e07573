package farm

import (
	"math"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// DefaultTileSize is the side of a ground tile in world units.
const DefaultTileSize = 32

// Tile is a kind of ground.
type Tile int

const (
	TileGrass Tile = iota
	TileSoil
	TilePath
	TileWell
)

// TileMap is the ground layout under the field. It is generated once per
// season and only read afterwards.
type TileMap struct {
	width    int // Tiles per row
	height   int // Tiles per column
	tileSize float64
	tiles    []Tile
	well     core.Rect
}

// NewTileMap lays out a field of the given world size: soil under the crop
// grid, a well on the left and a path leading from the well to the soil.
func NewTileMap(fieldW, fieldH, tileSize float64, soil core.Rect) *TileMap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	w := max(int(math.Ceil(fieldW/tileSize)), 1)
	h := max(int(math.Ceil(fieldH/tileSize)), 1)
	m := &TileMap{
		width:    w,
		height:   h,
		tileSize: tileSize,
		tiles:    make([]Tile, w*h),
	}

	for row := range h {
		for col := range w {
			if m.tileRect(col, row).Intersects(soil) {
				m.tiles[row*w+col] = TileSoil
			}
		}
	}

	wellRow := core.Clamp(int(soil.Center().Y/tileSize), 0, h-1)
	wellCol := min(1, w-1)
	soilCol := int(soil.X / tileSize)
	for col := wellCol + 1; col < soilCol && col < w; col++ {
		if m.tiles[wellRow*w+col] == TileGrass {
			m.tiles[wellRow*w+col] = TilePath
		}
	}
	m.tiles[wellRow*w+wellCol] = TileWell
	m.well = m.tileRect(wellCol, wellRow)

	return m
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *TileMap) Height() int { return m.height }

// TileSize returns the tile side in world units.
func (m *TileMap) TileSize() float64 { return m.tileSize }

// TileAt returns the tile at column x, row y. Out of range is grass.
func (m *TileMap) TileAt(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return TileGrass
	}
	return m.tiles[y*m.width+x]
}

// TileAtPos returns the tile under a world position.
func (m *TileMap) TileAtPos(p core.Vec2) Tile {
	return m.TileAt(int(math.Floor(p.X/m.tileSize)), int(math.Floor(p.Y/m.tileSize)))
}

// WellRect returns the well's tile in world units.
func (m *TileMap) WellRect() core.Rect { return m.well }

func (m *TileMap) tileRect(col, row int) core.Rect {
	return core.NewRect(float64(col)*m.tileSize, float64(row)*m.tileSize, m.tileSize, m.tileSize)
}
