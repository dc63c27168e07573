package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/games/farm"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a season",
	Long: `Start playing. Without a mode the last played one is used (farm on
first launch).

Controls:
  WASD/Arrows - Walk
  Space       - Plant the selected seed
  Tab         - Next seed
  F           - Water
  E           - Harvest
  X           - Pull up a plant
  G           - Refill the can at the well
  P           - Pause
  R           - Restart (after the season ends)
  Esc/B       - Leave (when paused or over)
  Q/Ctrl+C    - Quit

Difficulty options (remembered for next time):
  easy   - Few, slow crows that ramp up gently
  normal - The default
  hard   - More crows from the start
  fixed  - No progression, stays at the config's base level

Examples:
  farm play
  farm play farm_endless
  farm play --difficulty hard
  farm play --config ./my-farm.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	p := openPrefs()
	last := p.Get()

	gameID := last.Mode
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'farm list' to see available modes)", gameID)
	}

	difficulty := last.Difficulty
	if flagDifficulty != "" {
		if config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		difficulty = flagDifficulty
	}

	farm.SetConfigPath(flagConfig)
	farm.SetDifficultyPreset(difficulty)
	savePrefs(p, gameID, difficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, runtimeConfig(), difficulty)
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
