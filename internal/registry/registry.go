// Package registry maps mode IDs to game constructors. Each farm mode
// registers itself from init, and the CLI, the SSH menu and the web API
// look modes up here by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-farm/internal/core"
)

// Game is a playable mode. Implementations hold simulation state only; the
// tui package owns keys, ticks and the terminal.
type Game interface {
	// ID is the stable key used on the command line and in the score store,
	// e.g. "farm" or "farm_endless".
	ID() string

	// Title is shown in menus and listings.
	Title() string

	// Reset starts a fresh session laid out for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which has already been cleared.
	Render(dst *core.Screen)

	// State reports score and the paused and over flags.
	State() core.GameState
}

// Summarizer is implemented by games that report a per-session summary
// worth persisting next to the score.
type Summarizer interface {
	Summary() core.Summary
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return result
}

// Create builds a new instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
