// Package prefs remembers the player's last choices (difficulty, mode)
// between runs using gdata's per-user storage. Without a gdata manager it
// keeps them in memory only.
package prefs

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-farm/internal/config"
)

// AppName is the gdata application key.
const AppName = "tui_farm"

const (
	prefsObject   = "prefs"
	prefsProperty = "last"
)

// Preferences are the remembered menu choices.
type Preferences struct {
	Difficulty string `yaml:"difficulty"`
	Mode       string `yaml:"mode"` // Game ID
}

// Defaults returns the choices used on first launch.
func Defaults() Preferences {
	return Preferences{
		Difficulty: string(config.DifficultyNormal),
		Mode:       "farm",
	}
}

// Store loads and saves Preferences.
type Store struct {
	manager *gdata.Manager // nil means in-memory only
	prefs   Preferences
}

// Open opens the per-user gdata storage. When gdata is unavailable the
// returned store still works in memory and the error says why.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		s, _ := New(nil)
		return s, fmt.Errorf("prefs: cannot open storage: %w", err)
	}
	return New(m)
}

// New creates a store on top of m and loads saved preferences. A load
// failure leaves the defaults in place and is returned.
func New(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m, prefs: Defaults()}
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Persistent reports whether preferences survive a restart.
func (s *Store) Persistent() bool {
	return s.manager != nil
}

// Load reads saved preferences. Missing data keeps the defaults.
func (s *Store) Load() error {
	s.prefs = Defaults()
	if s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("prefs: cannot load: %w", err)
	}

	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("prefs: cannot decode: %w", err)
	}
	if config.ParsePreset(loaded.Difficulty) != "" {
		s.prefs.Difficulty = loaded.Difficulty
	}
	if loaded.Mode != "" {
		s.prefs.Mode = loaded.Mode
	}
	return nil
}

// Save writes the current preferences. It is a no-op in memory-only mode.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("prefs: cannot encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("prefs: cannot save: %w", err)
	}
	return nil
}

// Get returns the current preferences.
func (s *Store) Get() Preferences {
	return s.prefs
}

// SetDifficulty remembers a difficulty preset. Unknown names are ignored.
func (s *Store) SetDifficulty(name string) {
	if config.ParsePreset(name) != "" {
		s.prefs.Difficulty = name
	}
}

// SetMode remembers the last played game ID.
func (s *Store) SetMode(id string) {
	if id != "" {
		s.prefs.Mode = id
	}
}
