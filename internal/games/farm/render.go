package farm

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// Glyphs
const (
	GlyphPlayer  = '@'
	GlyphCrow    = 'v'
	GlyphFleeing = '^'
	GlyphSeed    = ','
	GlyphDry     = '.'
	GlyphWet     = '~'
	GlyphPath    = ':'
	GlyphWell    = '#'
	GlyphGrass   = '\''
	GlyphReach   = '+'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		minW := int(math.Ceil(g.cfg.Grid.Width/g.cfg.Field.UnitsPerColumn)) + 2
		minH := int(math.Ceil(g.cfg.Grid.Height/g.cfg.Field.UnitsPerRow)) + hudHeight + 1
		g.drawCenteredBox(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.renderTiles(dst)
	g.renderReach(dst)
	g.renderCells(dst)
	g.renderCrows(dst)

	px, py := g.toScreen(g.player.Pos())
	dst.SetColor(px, py, GlyphPlayer, core.ColorBrightYellow)

	switch {
	case g.gameOver:
		g.drawCenteredBox(dst, "SEASON OVER",
			fmt.Sprintf("Score: %d  |  Harvested: %d  |  Press R to restart", g.score, g.summary.Harvested))
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the score, clock, seed and can on row 0 and a separator
// or the latest message on row 1.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	clock := "Endless"
	if left := g.remaining(); left >= 0 {
		secs := int(math.Ceil(left))
		clock = fmt.Sprintf("Time: %d:%02d", secs/60, secs%60)
	}
	dst.DrawTextCentered(0, clock)

	seed := "-"
	if kind := g.catalog.Get(g.seedIndex); kind != nil {
		seed = kind.Name()
	}
	right := fmt.Sprintf("Seed: %s  Can: %d/%d  Crows: %d", seed, g.can.Remaining(), g.can.Capacity(), len(g.crows))
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	if g.messageTicks > 0 && g.message != "" {
		dst.DrawTextColor(1, 1, g.message, core.ColorYellow)
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderTiles(dst *core.Screen) {
	upc := g.cfg.Field.UnitsPerColumn
	upr := g.cfg.Field.UnitsPerRow
	for y := hudHeight; y < dst.Height(); y++ {
		for x := range dst.Width() {
			center := core.V((float64(x)+0.5)*upc, (float64(y-hudHeight)+0.5)*upr)
			switch g.tiles.TileAtPos(center) {
			case TileGrass:
				if (x*7+y*13)%11 == 0 {
					dst.SetColor(x, y, GlyphGrass, core.ColorDarkGreen)
				}
			case TilePath:
				dst.SetColor(x, y, GlyphPath, core.ColorBrown)
			case TileWell:
				dst.SetColor(x, y, GlyphWell, core.ColorBlue)
			}
		}
	}
}

// renderReach marks the corners of the player's reach box.
func (g *Game) renderReach(dst *core.Screen) {
	r := g.player.ReachRect()
	x0, y0 := g.toScreen(core.V(r.X, r.Y))
	x1, y1 := g.toScreen(core.V(r.Right(), r.Bottom()))
	for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		dst.SetColor(p[0], p[1], GlyphReach, core.ColorGray)
	}
}

func (g *Game) renderCells(dst *core.Screen) {
	targeted := g.grid.FindIntersecting(g.player.ReachRect())
	for i, v := range g.grid.Cells() {
		soil, color := GlyphDry, core.ColorBrown
		if v.Watered {
			soil, color = GlyphWet, core.ColorBlue
		}
		if targeted != nil && targeted == g.grid.Cell(i) {
			color = core.ColorBrightWhite
		}
		dst.DrawRect(g.toBox(v.Rect), soil, color)

		if !v.Planted {
			continue
		}
		cx, cy := g.toScreen(v.Pos)
		switch v.Stage {
		case StageSeed:
			dst.SetColor(cx, cy, GlyphSeed, core.ColorYellow)
		case StageSprout:
			dst.SetColor(cx, cy, v.Sprites.Sprout.Glyph, v.Sprites.Sprout.Color)
		case StageMature:
			dst.SetColor(cx, cy, v.Sprites.Mature.Glyph, v.Sprites.Mature.Color)
		}
	}
}

func (g *Game) renderCrows(dst *core.Screen) {
	for _, c := range g.crows {
		x, y := g.toScreen(c.Pos())
		if y < hudHeight {
			continue
		}
		if c.Fleeing() {
			dst.SetColor(x, y, GlyphFleeing, core.ColorWhite)
		} else {
			dst.SetColor(x, y, GlyphCrow, core.ColorMagenta)
		}
	}
}

// toScreen maps a world position to a terminal cell below the HUD.
func (g *Game) toScreen(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X / g.cfg.Field.UnitsPerColumn))
	y := int(math.Floor(p.Y/g.cfg.Field.UnitsPerRow)) + hudHeight
	return x, y
}

// toBox maps a world rectangle to the terminal cells it covers.
func (g *Game) toBox(r core.Rect) core.Box {
	x0, y0 := g.toScreen(core.V(r.X, r.Y))
	x1 := int(math.Ceil(r.Right() / g.cfg.Field.UnitsPerColumn))
	y1 := int(math.Ceil(r.Bottom()/g.cfg.Field.UnitsPerRow)) + hudHeight
	return core.Box{X: x0, Y: y0, W: max(x1-x0, 1), H: max(y1-y0, 1)}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.Box{X: (w - boxW) / 2, Y: (h - boxH) / 2, W: boxW, H: boxH}

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
