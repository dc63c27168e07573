package farm

import (
	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeSeason  Mode = "season"  // Timed season, game over when the clock runs out
	ModeEndless Mode = "endless" // No clock, play until quitting
)

const hudHeight = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the farm: a player tends a crop grid while crows raid it.
type Game struct {
	mode       Mode
	cfg        config.FarmConfig
	difficulty *config.DifficultyManager
	rng        *SeededRandom

	tick    uint64
	dt      float64
	elapsed float64
	score   Score
	summary core.Summary

	catalog   *Catalog
	seedIndex int
	grid      *Grid
	tiles     *TileMap
	player    *Player
	crows     []*Crow
	can       *WaterCan
	field     core.Rect // World area visible on screen

	message      string
	messageTicks int

	screenW  int
	screenH  int
	tickRate int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a timed season game.
func New() *Game {
	return &Game{mode: ModeSeason}
}

// NewEndless creates a game without a season clock.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("farm", func() registry.Game {
		return New()
	})
	registry.Register("farm_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "farm_endless"
	}
	return "farm"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Farm (Endless)"
	}
	return "Farm"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadFarm(configPath)
	if err != nil {
		cfg = config.DefaultFarmConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFarmPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = NewRandom(runtime.Seed)
	g.tick = 0
	g.dt = runtime.Delta()
	g.elapsed = 0
	g.score = 0
	g.summary = core.Summary{}
	g.seedIndex = 0
	g.message = ""
	g.messageTicks = 0
	g.gameOver = false
	g.paused = false
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tickRate = runtime.TickRate

	g.field = core.NewRect(0, 0,
		float64(g.screenW)*cfg.Field.UnitsPerColumn,
		float64(max(g.screenH-hudHeight, 0))*cfg.Field.UnitsPerRow,
	)
	g.tooSmall = cfg.Grid.Width > g.field.W || cfg.Grid.Height > g.field.H

	g.catalog = CatalogFromConfig(cfg.Plants)
	g.grid = NewGrid(g.field.Center(), cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.CellSize)
	g.grid.SetRewardImmaturePull(cfg.Rules.RewardImmaturePull)
	g.tiles = NewTileMap(g.field.W, g.field.H, cfg.Field.TileSize, g.grid.Bounds())

	bounds := g.grid.Bounds()
	start := core.V(bounds.Center().X, bounds.Bottom()+cfg.Player.ReachSize)
	g.player = NewPlayer(start, cfg.Player.Speed, cfg.Player.ReachSize, g.field)
	g.player.Update(0, core.AxisState{})

	g.can = NewWaterCan(cfg.Water.Portion, cfg.Water.Capacity)

	g.crows = g.crows[:0]
	g.spawnCrows(g.difficulty.Count(cfg.Crows.Count, cfg.Crows.MaxCount, 0, 0))
}

func (g *Game) crowConfig() CrowConfig {
	c := g.cfg.Crows
	return CrowConfig{
		Speed:             g.difficulty.Speed(c.Speed, g.score.Value(), int(g.tick)),
		GrabRadius:        c.GrabRadius,
		Border:            c.Border,
		Samples:           c.Samples,
		FleeAccel:         c.FleeAccel,
		RetargetWhenEmpty: c.RetargetWhenEmpty,
	}
}

// spawnCrows adds crows until n are active.
func (g *Game) spawnCrows(n int) {
	for len(g.crows) < n {
		g.crows = append(g.crows, SpawnCrow(g.field, g.crowConfig(), g.rng))
	}
}

// Step advances the game by one tick: player, intent, growth, crows, clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
	}

	g.player.Update(g.dt, in.Axes())
	g.handleIntent(in)
	g.grid.Advance(g.dt)
	g.updateDifficulty()
	for _, c := range g.crows {
		if c.Update(g.dt, g.grid, g.rng, g.field) {
			g.summary.Stolen++
			g.say("A crow took a crop!")
		}
	}

	g.elapsed += g.dt
	if g.mode == ModeSeason && g.cfg.Season.Length > 0 && g.elapsed >= g.cfg.Season.Length {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// handleIntent resolves at most one action per tick against the cell under
// the player's reach.
func (g *Game) handleIntent(in core.InputFrame) {
	reach := g.player.ReachRect()
	switch {
	case in.Has(core.ActionNextSeed):
		g.seedIndex = (g.seedIndex + 1) % max(g.catalog.Len(), 1)
		if kind := g.catalog.Get(g.seedIndex); kind != nil {
			g.say("Seed: " + kind.Name())
		}
	case in.Has(core.ActionPlant):
		if g.grid.PlantAt(g.catalog.Get(g.seedIndex), reach) {
			g.summary.Planted++
		}
	case in.Has(core.ActionWater):
		if g.can.Empty() {
			g.say("The can is empty, refill at the well")
			return
		}
		if g.grid.WaterAt(g.can.Portion(), reach) {
			g.can.Pour()
		}
	case in.Has(core.ActionHarvest):
		if g.grid.HarvestAt(&g.score, reach) {
			g.summary.Harvested++
		}
	case in.Has(core.ActionPull):
		if g.grid.PullAt(&g.score, reach) {
			g.summary.Pulled++
		}
	case in.Has(core.ActionRefill):
		if reach.Touches(g.tiles.WellRect()) && g.can.Refill() {
			g.say("Can refilled")
		}
	}
}

// updateDifficulty adds crows and speeds them up as the score grows.
func (g *Game) updateDifficulty() {
	c := g.cfg.Crows
	g.spawnCrows(g.difficulty.Count(c.Count, c.MaxCount, g.score.Value(), int(g.tick)))
	speed := g.difficulty.Speed(c.Speed, g.score.Value(), int(g.tick))
	for _, crow := range g.crows {
		crow.SetSpeed(speed)
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = 2 * max(g.tickRate, 1)
}

// remaining returns the seconds left in the season, or -1 without a clock.
func (g *Game) remaining() float64 {
	if g.mode != ModeSeason || g.cfg.Season.Length <= 0 {
		return -1
	}
	return max(g.cfg.Season.Length-g.elapsed, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Value(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Summary returns the season tally so far.
func (g *Game) Summary() core.Summary {
	s := g.summary
	s.Seconds = g.elapsed
	return s
}
