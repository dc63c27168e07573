package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var flagSeasons int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores and recent seasons",
	Long: `Display the top 10 scores for a mode, followed by the most recent
seasons with their harvest and crow tallies.

Examples:
  farm scores farm
  farm scores farm_endless --seasons 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagSeasons, "seasons", 5, "Number of recent seasons to show (0 to hide)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'farm list' to see available modes)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'farm play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Played: %d  Avg: %.1f  Harvested: %d  Lost to crows: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalHarvested, stats.TotalStolen)

	return printSeasons(store, gameID)
}

func printSeasons(store *storage.Store, gameID string) error {
	if flagSeasons <= 0 {
		return nil
	}
	seasons, err := store.RecentSeasons(gameID, flagSeasons)
	if err != nil {
		return fmt.Errorf("cannot load recent seasons: %w", err)
	}
	if len(seasons) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent seasons:")
	fmt.Printf("  %-16s  %-6s  %-7s  %-6s  %-6s  %-5s  %s\n", "Date", "Score", "Planted", "Harv", "Stolen", "Time", "Difficulty")
	for _, s := range seasons {
		fmt.Printf("  %-16s  %-6d  %-7d  %-6d  %-6d  %2d:%02d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Score, s.Planted, s.Harvested, s.Stolen,
			s.Duration/60, s.Duration%60, s.Difficulty)
	}
	return nil
}
