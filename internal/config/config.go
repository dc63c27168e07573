// Package config provides YAML-based game configuration loading and
// difficulty management for the farm.
package config

import (
	"errors"
	"fmt"
)

// FarmConfig contains all tunable parameters of a farm session.
type FarmConfig struct {
	Field      FarmField        `yaml:"field"`
	Grid       FarmGrid         `yaml:"grid"`
	Player     FarmPlayer       `yaml:"player"`
	Crows      FarmCrows        `yaml:"crows"`
	Water      FarmWater        `yaml:"water"`
	Season     FarmSeason       `yaml:"season"`
	Rules      FarmRules        `yaml:"rules"`
	Plants     []PlantConfig    `yaml:"plants"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FarmField maps world units to terminal cells.
type FarmField struct {
	UnitsPerColumn float64 `yaml:"units_per_column"` // World units covered by one terminal column
	UnitsPerRow    float64 `yaml:"units_per_row"`    // World units covered by one terminal row
	TileSize       float64 `yaml:"tile_size"`        // Ground tile side in world units
}

// FarmGrid defines the crop grid layout.
type FarmGrid struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	CellSize float64 `yaml:"cell_size"` // Side of each cell's bounding box
}

// FarmPlayer defines player movement and reach.
type FarmPlayer struct {
	Speed     float64 `yaml:"speed"`      // Units per second
	ReachSize float64 `yaml:"reach_size"` // Side of the reach rectangle
}

// FarmCrows defines crow behaviour.
type FarmCrows struct {
	Count             int     `yaml:"count"`     // Crows active at the start of a season
	MaxCount          int     `yaml:"max_count"` // Upper bound once difficulty ramps up
	Speed             float64 `yaml:"speed"`
	GrabRadius        float64 `yaml:"grab_radius"`
	Border            float64 `yaml:"border"` // Off-screen margin crows flee into
	Samples           int     `yaml:"samples"`
	FleeAccel         float64 `yaml:"flee_accel"`
	RetargetWhenEmpty bool    `yaml:"retarget_when_empty"`
}

// FarmWater defines the water can.
type FarmWater struct {
	Portion  float64 `yaml:"portion"`
	Capacity int     `yaml:"capacity"`
}

// FarmSeason defines the timed season. Zero length means no time limit.
type FarmSeason struct {
	Length float64 `yaml:"length"` // Seconds
}

// FarmRules holds scoring rules that varied between prototype revisions.
type FarmRules struct {
	RewardImmaturePull bool `yaml:"reward_immature_pull"`
}

// PlantConfig describes one plantable species.
type PlantConfig struct {
	Name        string  `yaml:"name"`
	SproutTime  float64 `yaml:"sprout_time"`
	GrowTime    float64 `yaml:"grow_time"`
	WaterUsage  float64 `yaml:"water_usage"`
	SproutGlyph string  `yaml:"sprout_glyph"`
	MatureGlyph string  `yaml:"mature_glyph"`
	Color       string  `yaml:"color"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to crow speed at max difficulty
	ExtraCrows      int     `yaml:"extra_crows"`      // Crows added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrNoPlants is returned by Validate when a config defines no species.
var ErrNoPlants = errors.New("config: at least one plant species is required")

// Validate checks the structural constraints the simulation relies on.
func (c FarmConfig) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("config: grid must have positive rows and cols, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 || c.Grid.CellSize <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive")
	}
	if c.Field.UnitsPerColumn <= 0 || c.Field.UnitsPerRow <= 0 {
		return fmt.Errorf("config: field scale must be positive")
	}
	if len(c.Plants) == 0 {
		return ErrNoPlants
	}
	for _, p := range c.Plants {
		if p.Name == "" {
			return fmt.Errorf("config: plant species without a name")
		}
		if p.SproutTime < 0 || p.GrowTime < 0 || p.WaterUsage < 0 {
			return fmt.Errorf("config: plant %q has negative timings", p.Name)
		}
	}
	if c.Crows.Count < 0 || c.Crows.MaxCount < c.Crows.Count {
		return fmt.Errorf("config: crow max_count (%d) must be >= count (%d) >= 0", c.Crows.MaxCount, c.Crows.Count)
	}
	if c.Water.Capacity <= 0 || c.Water.Portion <= 0 {
		return fmt.Errorf("config: water can needs positive portion and capacity")
	}
	return nil
}
