package farm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-farm/internal/core"
)

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	SetConfigPath("")
	SetDifficultyPreset("")
	g.Reset(core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	if g.tooSmall {
		t.Fatal("80x24 should fit the default field")
	}
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// walkToBottomCell moves the player up from its start until the reach box
// covers the middle cell of the bottom row.
func walkToBottomCell(t *testing.T, g *Game) *Cell {
	t.Helper()
	for range 12 {
		g.Step(press(core.ActionUp))
	}
	c := g.grid.FindIntersecting(g.player.ReachRect())
	if c == nil {
		t.Fatalf("Reach %+v touches no cell", g.player.ReachRect())
	}
	want := g.grid.Cell(g.grid.Len() - 3)
	if c != want {
		t.Fatalf("Expected bottom middle cell at %v, got %v", want.Pos(), c.Pos())
	}
	return c
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, New())
	g2 := newTestGame(t, New())

	script := func(i int) core.InputFrame {
		switch {
		case i < 12:
			return press(core.ActionUp)
		case i == 12:
			return press(core.ActionPlant)
		case i == 13:
			return press(core.ActionWater)
		case i%90 == 0:
			return press(core.ActionHarvest)
		default:
			return press()
		}
	}

	for i := range 1200 {
		g1.Step(script(i))
		g2.Step(script(i))
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPlantWaterAndGrow(t *testing.T) {
	g := newTestGame(t, New())
	cell := walkToBottomCell(t, g)

	g.Step(press(core.ActionPlant))
	if cell.Empty() {
		t.Fatal("Plant intent should sow the cell under reach")
	}
	if cell.Crop().Kind().Name() != "turnip" {
		t.Errorf("Expected the first species, got %s", cell.Crop().Kind().Name())
	}

	before := cell.Crop().Counter()
	g.Step(press())
	if cell.Crop().Counter() != before {
		t.Error("Dry soil should not grow the plant")
	}

	g.Step(press(core.ActionWater))
	if !cell.Watered() {
		t.Fatal("Water intent should wet the cell")
	}
	if g.can.Remaining() != g.can.Capacity()-1 {
		t.Errorf("Expected one portion used, %d left", g.can.Remaining())
	}

	g.Step(press(core.ActionWater))
	if g.can.Remaining() != g.can.Capacity()-1 {
		t.Error("Watering a wet cell should not use a portion")
	}
	if cell.Crop().Counter() >= before {
		t.Error("Watered plant should grow")
	}

	if s := g.Summary(); s.Planted != 1 {
		t.Errorf("Expected 1 planted, got %d", s.Planted)
	}
}

func TestNextSeedCycles(t *testing.T) {
	g := newTestGame(t, New())
	n := g.catalog.Len()
	for i := range n {
		if g.seedIndex != i {
			t.Fatalf("Expected seed %d, got %d", i, g.seedIndex)
		}
		g.Step(press(core.ActionNextSeed))
	}
	if g.seedIndex != 0 {
		t.Errorf("Seed selection should wrap around, got %d", g.seedIndex)
	}
}

func TestOneIntentPerTick(t *testing.T) {
	g := newTestGame(t, New())
	cell := walkToBottomCell(t, g)

	g.Step(press(core.ActionPlant, core.ActionWater))
	if cell.Empty() {
		t.Fatal("Plant should win over water")
	}
	if cell.Watered() {
		t.Error("Only one intent should resolve per tick")
	}
}

func TestRefillOnlyAtWell(t *testing.T) {
	g := newTestGame(t, New())
	g.can.Pour()

	g.Step(press(core.ActionRefill))
	if g.can.Remaining() == g.can.Capacity() {
		t.Fatal("Refill away from the well should do nothing")
	}

	g.player = NewPlayer(g.tiles.WellRect().Center(), g.cfg.Player.Speed, g.cfg.Player.ReachSize, g.field)
	g.Step(press(core.ActionRefill))
	if g.can.Remaining() != g.can.Capacity() {
		t.Errorf("Expected full can at the well, got %d", g.can.Remaining())
	}
}

func TestHarvestScores(t *testing.T) {
	g := newTestGame(t, New())
	cell := walkToBottomCell(t, g)
	g.Step(press(core.ActionPlant))
	cell.Water(1000)
	cell.Advance(cell.Crop().Counter())

	g.Step(press(core.ActionHarvest))
	if g.State().Score != HarvestPoints {
		t.Errorf("Expected score %d, got %d", HarvestPoints, g.State().Score)
	}
	if !cell.Empty() {
		t.Error("Turnips are one-shot and should be gone after harvest")
	}
	if s := g.Summary(); s.Harvested != 1 {
		t.Errorf("Expected 1 harvested, got %d", s.Harvested)
	}
}

func TestSeasonEnds(t *testing.T) {
	g := newTestGame(t, New())
	g.cfg.Season.Length = 1

	for range 59 {
		g.Step(press())
	}
	if g.State().GameOver {
		t.Fatal("Season ended early")
	}
	for range 2 {
		g.Step(press())
	}
	if !g.State().GameOver {
		t.Error("Season should be over after its length")
	}

	g.Step(press(core.ActionRestart))
	if g.State().GameOver {
		t.Error("Restart should start a new season")
	}
}

func TestEndlessHasNoClock(t *testing.T) {
	g := newTestGame(t, NewEndless())
	g.cfg.Season.Length = 1
	for range 120 {
		g.Step(press())
	}
	if g.State().GameOver {
		t.Error("Endless mode should not end on the season clock")
	}
	if g.ID() != "farm_endless" {
		t.Errorf("Expected farm_endless, got %s", g.ID())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(press(core.ActionPause))
	before := g.Snapshot()

	for range 30 {
		g.Step(press(core.ActionUp))
	}
	after := g.Snapshot()
	if after.PlayerY != before.PlayerY || after.Elapsed != before.Elapsed {
		t.Error("Paused game should not advance")
	}
	if after.State != StatePaused {
		t.Errorf("Expected paused state, got %s", after.State)
	}
}

func TestCrowsGrowWithScore(t *testing.T) {
	g := newTestGame(t, New())
	start := len(g.crows)

	g.score = Score(g.cfg.Difficulty.Progression.MaxAt)
	g.Step(press())
	if len(g.crows) <= start {
		t.Errorf("Expected more crows at max difficulty, still %d", len(g.crows))
	}
	if len(g.crows) > g.cfg.Crows.MaxCount {
		t.Errorf("Crow count %d exceeds max %d", len(g.crows), g.cfg.Crows.MaxCount)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 8, TickRate: 60})
	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("Expected small-window state, got %s", g.Snapshot().State)
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Need") {
		t.Error("Expected a resize hint")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	walkToBottomCell(t, g)
	g.Step(press(core.ActionPlant))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Time: 3:00", "Seed: turnip", "@", "#", ","} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}
