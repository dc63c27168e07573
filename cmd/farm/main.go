// farm is a terminal farming game: plant, water and harvest crops on a grid
// while crows try to steal them.
//
// Usage:
//
//	farm list              - List available modes
//	farm play [mode]       - Play a season (or another mode)
//	farm menu              - Start menu to pick modes interactively
//	farm serve             - Start SSH server for remote play
//	farm scores <mode>     - Show high scores and recent seasons
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tui-farm/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-farm/internal/games/farm"
	"github.com/vovakirdan/tui-farm/internal/prefs"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports CLI warnings on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "farm"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farm",
	Short: "TUI Farm - grow crops in your terminal",
	Long: `TUI Farm is a small farming game for the terminal. Walk the field,
plant seeds, keep the soil watered and harvest before the crows get there.

Available commands:
  list     - Show all available modes
  play     - Play a season directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent seasons

Examples:
  farm play
  farm play farm_endless --difficulty hard
  farm menu
  farm serve --ssh :2222 --http :8080
  farm scores farm`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-farm/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// openPrefs loads remembered choices. The game still works without them.
func openPrefs() *prefs.Store {
	p, err := prefs.Open()
	if err != nil {
		logger.Warn("could not load preferences", "error", err)
	}
	return p
}

// savePrefs stores the last choices, warning on failure.
func savePrefs(p *prefs.Store, gameID, difficulty string) {
	p.SetMode(gameID)
	p.SetDifficulty(difficulty)
	if err := p.Save(); err != nil {
		logger.Warn("could not save preferences", "error", err)
	}
}
