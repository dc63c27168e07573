package config

import (
	_ "embed"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultFarmConfig returns the hardcoded farm configuration.
// It mirrors defaults/farm.yaml and is used when the embedded file fails to parse.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Field: FarmField{
			UnitsPerColumn: 8,
			UnitsPerRow:    16,
			TileSize:       32,
		},
		Grid: FarmGrid{
			Rows:     4,
			Cols:     5,
			Width:    320,
			Height:   192,
			CellSize: 32,
		},
		Player: FarmPlayer{
			Speed:     120,
			ReachSize: 24,
		},
		Crows: FarmCrows{
			Count:             1,
			MaxCount:          4,
			Speed:             90,
			GrabRadius:        2.0,
			Border:            48,
			Samples:           3,
			FleeAccel:         120,
			RetargetWhenEmpty: false,
		},
		Water: FarmWater{
			Portion:  10,
			Capacity: 3,
		},
		Season: FarmSeason{
			Length: 180,
		},
		Rules: FarmRules{
			RewardImmaturePull: false,
		},
		Plants: []PlantConfig{
			{Name: "turnip", SproutTime: 0, GrowTime: 8, WaterUsage: 1.0, SproutGlyph: "v", MatureGlyph: "O", Color: "bright_white"},
			{Name: "tomato", SproutTime: 6, GrowTime: 10, WaterUsage: 0.8, SproutGlyph: "y", MatureGlyph: "@", Color: "red"},
			{Name: "carrot", SproutTime: 0, GrowTime: 12, WaterUsage: 0.6, SproutGlyph: "v", MatureGlyph: "V", Color: "orange"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				ExtraCrows:      3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "farm", "farm_endless":
		return defaultFarmYAML
	default:
		return nil
	}
}
