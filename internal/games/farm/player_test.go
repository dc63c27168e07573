package farm

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/core"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name string
		axes core.AxisState
		want core.Vec2
	}{
		{"idle", core.AxisState{}, core.V(100, 100)},
		{"right", core.AxisState{Right: true}, core.V(110, 100)},
		{"up", core.AxisState{Up: true}, core.V(100, 90)},
		{"opposing cancel", core.AxisState{Left: true, Right: true}, core.V(100, 100)},
		{"diagonal", core.AxisState{Left: true, Down: true}, core.V(100-10/math.Sqrt2, 100+10/math.Sqrt2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(core.V(100, 100), 20, 24, core.Rect{})
			p.Update(0.5, tt.axes)
			if p.Pos().Dist(tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, p.Pos())
			}
		})
	}
}

func TestPlayerDiagonalSpeedMatchesAxial(t *testing.T) {
	axial := NewPlayer(core.V(0, 0), 60, 24, core.Rect{})
	diagonal := NewPlayer(core.V(0, 0), 60, 24, core.Rect{})
	axial.Update(1, core.AxisState{Right: true})
	diagonal.Update(1, core.AxisState{Right: true, Down: true})

	if math.Abs(axial.Pos().Len()-diagonal.Pos().Len()) > 1e-9 {
		t.Errorf("Distances differ: axial %v, diagonal %v", axial.Pos().Len(), diagonal.Pos().Len())
	}
}

func TestPlayerReachFollowsPosition(t *testing.T) {
	p := NewPlayer(core.V(50, 50), 100, 24, core.Rect{})
	p.Update(0.1, core.AxisState{Right: true})

	r := p.ReachRect()
	if r.Center() != p.Pos() {
		t.Errorf("Reach should be centered on %v, got center %v", p.Pos(), r.Center())
	}
	if r.W != 24 || r.H != 24 {
		t.Errorf("Expected 24x24 reach, got %vx%v", r.W, r.H)
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	bounds := core.NewRect(0, 0, 100, 100)
	p := NewPlayer(core.V(95, 5), 100, 24, bounds)
	p.Update(1, core.AxisState{Right: true, Up: true})
	if p.Pos() != core.V(100, 0) {
		t.Errorf("Expected clamp to (100,0), got %v", p.Pos())
	}
}

func TestWaterCan(t *testing.T) {
	can := NewWaterCan(10, 2)
	if can.Refill() {
		t.Error("Refilling a full can should report no change")
	}

	for i := range 2 {
		portion, ok := can.Pour()
		if !ok || portion != 10 {
			t.Fatalf("pour %d: expected 10, got %v (%v)", i, portion, ok)
		}
	}
	if !can.Empty() {
		t.Error("Can should be empty after capacity pours")
	}
	if _, ok := can.Pour(); ok {
		t.Error("Pouring from an empty can should fail")
	}
	if !can.Refill() || can.Remaining() != 2 {
		t.Errorf("Expected full can after refill, got %d", can.Remaining())
	}
}

func TestTileMapLayout(t *testing.T) {
	soil := core.NewRect(160, 96, 320, 192)
	m := NewTileMap(640, 352, 32, soil)

	if m.Width() != 20 || m.Height() != 11 {
		t.Fatalf("Expected 20x11 tiles, got %dx%d", m.Width(), m.Height())
	}
	if got := m.TileAtPos(soil.Center()); got != TileSoil {
		t.Errorf("Expected soil under the grid, got %v", got)
	}
	if got := m.TileAt(0, 0); got != TileGrass {
		t.Errorf("Expected grass in the corner, got %v", got)
	}
	if got := m.TileAt(-1, 50); got != TileGrass {
		t.Errorf("Out of range should be grass, got %v", got)
	}

	well := m.WellRect()
	if got := m.TileAtPos(well.Center()); got != TileWell {
		t.Errorf("Expected well at %+v, got %v", well, got)
	}
	if well.Intersects(soil) {
		t.Error("Well should not overlap the soil")
	}
	if got := m.TileAtPos(core.V(well.Right()+m.TileSize()/2, well.Center().Y)); got != TilePath {
		t.Errorf("Expected path next to the well, got %v", got)
	}
}
