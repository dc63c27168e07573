package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const farmFile = "farm.yaml"

// LoadFarm loads the farm configuration.
// Search order: customPath -> ~/.tui-farm/configs/farm.yaml -> ./configs/farm.yaml -> embedded default
//
// Files only need to specify the fields they change: each candidate is
// decoded on top of the defaults.
func LoadFarm(customPath string) (FarmConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFarmConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFarm(data)
		if err != nil {
			return DefaultFarmConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken user or local files are skipped, not fatal
	for _, path := range []string{userConfigPath(farmFile), filepath.Join("configs", farmFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseFarm(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseFarm(defaultFarmYAML)
	if err != nil {
		return DefaultFarmConfig(), nil
	}
	return cfg, nil
}

// parseFarm decodes YAML over the defaults and validates the result.
func parseFarm(data []byte) (FarmConfig, error) {
	cfg := DefaultFarmConfig()
	// A file that lists plants replaces the default catalog entirely
	cfg.Plants = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if len(cfg.Plants) == 0 {
		cfg.Plants = DefaultFarmConfig().Plants
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-farm", "configs", filename)
}

// ApplyFarmPreset modifies the config based on a difficulty preset.
func ApplyFarmPreset(cfg *FarmConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Water.Capacity++
		cfg.Crows.Speed *= 0.75
	case DifficultyHard:
		cfg.Water.Capacity = max(1, cfg.Water.Capacity-1)
		cfg.Crows.Count = min(cfg.Crows.Count+1, cfg.Crows.MaxCount)
	}
}
