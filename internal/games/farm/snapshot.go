package farm

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// CrowSnapshot is a crow's observable state.
type CrowSnapshot struct {
	X, Y      float64
	State     CrowState
	HasTarget bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Elapsed   float64
	PlayerX   float64
	PlayerY   float64
	SeedIndex int
	Water     int // Portions left in the can
	Planted   int // Currently occupied cells
	Harvested int
	Pulled    int
	Stolen    int
	Crows     []CrowSnapshot
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	crows := make([]CrowSnapshot, len(g.crows))
	for i, c := range g.crows {
		_, hasTarget := c.Target()
		crows[i] = CrowSnapshot{
			X:         c.Pos().X,
			Y:         c.Pos().Y,
			State:     c.State(),
			HasTarget: hasTarget,
		}
	}

	pos := g.player.Pos()
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score.Value(),
		Elapsed:   g.elapsed,
		PlayerX:   pos.X,
		PlayerY:   pos.Y,
		SeedIndex: g.seedIndex,
		Water:     g.can.Remaining(),
		Planted:   g.grid.Planted(),
		Harvested: g.summary.Harvested,
		Pulled:    g.summary.Pulled,
		Stolen:    g.summary.Stolen,
		Crows:     crows,
		State:     state,
	}
}
