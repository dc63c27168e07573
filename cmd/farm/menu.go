package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/games/farm"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change difficulty and
Enter to play. After a season ends, Esc returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  farm menu
  farm menu --fps 30
  farm menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	p := openPrefs()
	farm.SetConfigPath(flagConfig)

	cfg := runtimeConfig()

	for {
		last := p.Get()
		result, err := tui.RunMenu(store, cfg, tui.MenuOptions{
			GameID:     last.Mode,
			Difficulty: last.Difficulty,
		})
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if result.GameID == "" {
			return nil
		}

		farm.SetDifficultyPreset(result.Difficulty)
		savePrefs(p, result.GameID, result.Difficulty)

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", result.GameID, "error", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, result.Difficulty); err != nil {
			logger.Error("game exited with an error", "error", err)
		}
	}
}
