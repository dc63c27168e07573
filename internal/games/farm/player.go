package farm

import "github.com/vovakirdan/tui-farm/internal/core"

// Player walks the field and acts on whatever cell its reach box touches.
type Player struct {
	pos       core.Vec2
	speed     float64
	reachSize float64
	bounds    core.Rect
	reach     core.Rect
}

// NewPlayer creates a player at pos, confined to bounds.
func NewPlayer(pos core.Vec2, speed, reachSize float64, bounds core.Rect) *Player {
	p := &Player{
		pos:       pos,
		speed:     speed,
		reachSize: reachSize,
		bounds:    bounds,
	}
	p.reach = core.RectAround(pos, reachSize, reachSize)
	return p
}

// Pos returns the player's position.
func (p *Player) Pos() core.Vec2 { return p.pos }

// ReachRect returns the interaction box centered on the player.
func (p *Player) ReachRect() core.Rect { return p.reach }

// Update moves the player along the normalized axis direction. Diagonal
// movement covers the same distance per second as axial movement.
func (p *Player) Update(dt float64, axes core.AxisState) {
	dir := axes.Direction()
	p.pos = p.pos.Add(dir.Scale(p.speed * dt))
	if p.bounds.W > 0 && p.bounds.H > 0 {
		p.pos = core.V(
			core.ClampF(p.pos.X, p.bounds.X, p.bounds.Right()),
			core.ClampF(p.pos.Y, p.bounds.Y, p.bounds.Bottom()),
		)
	}
	p.reach = core.RectAround(p.pos, p.reachSize, p.reachSize)
}
