package farm

import (
	"math"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// CrowState is the phase of a crow's steal cycle.
type CrowState int

const (
	CrowSeeking CrowState = iota
	CrowApproaching
	CrowFleeing
)

func (s CrowState) String() string {
	switch s {
	case CrowSeeking:
		return "seeking"
	case CrowApproaching:
		return "approaching"
	case CrowFleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// CrowConfig tunes crow behaviour.
type CrowConfig struct {
	Speed             float64 // Units per second
	GrabRadius        float64 // Distance at which a crop can be taken
	Border            float64 // Margin around the screen a fleeing crow may use
	Samples           int     // Random cells inspected per seeking tick
	FleeAccel         float64 // Units per second squared while fleeing
	RetargetWhenEmpty bool    // Drop a target whose crop disappeared instead of stealing at it
}

// DefaultCrowConfig returns the tuning used when no configuration is given.
func DefaultCrowConfig() CrowConfig {
	return CrowConfig{
		Speed:             90,
		GrabRadius:        2.0,
		Border:            48,
		Samples:           3,
		FleeAccel:         120,
		RetargetWhenEmpty: false,
	}
}

// Crow seeks planted cells, flies to one, steals its crop and flees past the
// edge of the screen before returning for another.
type Crow struct {
	cfg     CrowConfig
	pos     core.Vec2
	vel     core.Vec2
	target  *core.Vec2
	flyaway bool
}

// NewCrow creates a crow at pos with no target.
func NewCrow(pos core.Vec2, cfg CrowConfig) *Crow {
	if cfg.Samples <= 0 {
		cfg.Samples = 3
	}
	return &Crow{cfg: cfg, pos: pos}
}

// SpawnCrow places a new crow on a random edge of screen, just outside the
// visible area but inside the flee border.
func SpawnCrow(screen core.Rect, cfg CrowConfig, rng Random) *Crow {
	off := cfg.Border / 2
	var pos core.Vec2
	switch rng.Intn(4) {
	case 0: // top
		pos = core.V(rng.Float64Range(screen.X, screen.Right()), screen.Y-off)
	case 1: // right
		pos = core.V(screen.Right()+off, rng.Float64Range(screen.Y, screen.Bottom()))
	case 2: // bottom
		pos = core.V(rng.Float64Range(screen.X, screen.Right()), screen.Bottom()+off)
	default: // left
		pos = core.V(screen.X-off, rng.Float64Range(screen.Y, screen.Bottom()))
	}
	return NewCrow(pos, cfg)
}

// Pos returns the crow's position.
func (c *Crow) Pos() core.Vec2 { return c.pos }

// Velocity returns the crow's current velocity.
func (c *Crow) Velocity() core.Vec2 { return c.vel }

// Speed returns the cruising speed.
func (c *Crow) Speed() float64 { return c.cfg.Speed }

// SetSpeed changes the cruising speed, used as difficulty ramps up.
func (c *Crow) SetSpeed(speed float64) { c.cfg.Speed = speed }

// Fleeing reports whether the crow is carrying a stolen crop away.
func (c *Crow) Fleeing() bool { return c.flyaway }

// Target returns the position being approached, if any.
func (c *Crow) Target() (core.Vec2, bool) {
	if c.target == nil {
		return core.Vec2{}, false
	}
	return *c.target, true
}

// State classifies the crow for rendering and tests.
func (c *Crow) State() CrowState {
	switch {
	case c.flyaway:
		return CrowFleeing
	case c.target != nil:
		return CrowApproaching
	default:
		return CrowSeeking
	}
}

// Update advances the crow by dt seconds. It returns true when the crow
// stole a crop this tick.
func (c *Crow) Update(dt float64, grid *Grid, rng Random, screen core.Rect) bool {
	if c.flyaway {
		c.flee(dt, screen)
		return false
	}

	if c.target != nil && c.cfg.RetargetWhenEmpty && !grid.PlantedAt(*c.target) {
		c.target = nil
		c.vel = core.Vec2{}
	}

	if c.target == nil {
		c.findTarget(grid, rng)
		if c.target == nil {
			return false
		}
	}

	to := c.target.Sub(c.pos)
	dist := to.Len()
	if dist <= c.cfg.GrabRadius {
		return c.steal(grid, rng)
	}

	speed := core.ClampF(c.cfg.Speed*dist*c.cfg.GrabRadius, 0, c.cfg.Speed)
	c.vel = to.Normalize().Scale(speed)
	step := c.vel.Scale(dt)
	if step.Len() >= dist {
		c.pos = *c.target
	} else {
		c.pos = c.pos.Add(step)
	}
	return false
}

// findTarget inspects up to Samples random cells; the first planted one
// becomes the target.
func (c *Crow) findTarget(grid *Grid, rng Random) {
	n := grid.Len()
	if n == 0 {
		return
	}
	for range c.cfg.Samples {
		cell := grid.Cell(rng.Intn(n))
		if cell != nil && !cell.Empty() {
			pos := cell.Pos()
			c.target = &pos
			return
		}
	}
}

func (c *Crow) steal(grid *Grid, rng Random) bool {
	stole := grid.StealAt(*c.target)
	c.target = nil
	angle := rng.Float64Range(0, 2*math.Pi)
	c.vel = core.FromAngle(angle).Scale(c.cfg.Speed)
	c.flyaway = true
	return stole
}

// flee accelerates along the current heading until the crow leaves the
// bordered screen, then parks it just inside the border, ready to seek.
func (c *Crow) flee(dt float64, screen core.Rect) {
	c.vel = c.vel.Add(c.vel.Normalize().Scale(c.cfg.FleeAccel * dt))
	bound := screen.Expand(c.cfg.Border)
	next := c.pos.Add(c.vel.Scale(dt))
	if c.vel.Len() > 0 && bound.Contains(next) {
		c.pos = next
		return
	}
	c.pos = bound.ClampPoint(next, 1)
	c.vel = core.Vec2{}
	c.flyaway = false
}
