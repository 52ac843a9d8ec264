package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakthrough/internal/platform/tui"
	"github.com/vovakirdan/breakthrough/internal/storage"
)

var (
	flagScoresLevel int
	flagInteractive bool
	flagStats       bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores across all levels, or of one level.

Examples:
  breakthrough scores
  breakthrough scores --level 2
  breakthrough scores -i
  breakthrough scores --stats
  breakthrough scores --clear --level 2`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Level to show (1-based, 0 = all levels)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the scoreboard view")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-level statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of --level, or all scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	a, err := newApp("", flagInteractive)
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		return errors.New("scores database unavailable")
	}

	if flagInteractive {
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(a.store, a.levelNames(), rt.ScreenW, rt.ScreenH)
		return err
	}

	level := storage.AllLevels
	title := "All levels"
	if flagScoresLevel != 0 {
		index, err := levelIndex(flagScoresLevel, len(a.levels))
		if err != nil {
			return err
		}
		level = index
		title = a.levels[index].Name
	}

	switch {
	case flagClear:
		if err := a.store.ClearScores(level); err != nil {
			return err
		}
		fmt.Printf("Cleared scores - %s\n", title)
		return nil
	case flagStats:
		return printStats(a)
	}

	scores, err := a.store.TopScores(level, 10)
	if err != nil {
		return err
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakthrough play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-22s  %s\n", "Rank", "Player", "Score", "Won", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-22s  %s\n", "----", "------", "-----", "---", "-----", "----")

	// Print scores
	for i, entry := range scores {
		won := "no"
		if entry.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5s  %-22s  %s\n",
			i+1, entry.Player, entry.Score, won, a.levelName(entry.Level), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	fmt.Println()
	if highScore, err := a.store.HighScore(level); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if level != storage.AllLevels {
		if stats, err := a.store.LevelStats(level); err == nil && stats.Runs > 0 {
			fmt.Printf("Runs: %d  Wins: %d  Average: %.0f\n", stats.Runs, stats.Wins, stats.AvgScore)
		}
	}
	return nil
}

func printStats(a *app) error {
	stats, err := a.store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]int, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fmt.Printf("  %-22s  %-5s  %-5s  %-8s  %-8s  %s\n", "Level", "Runs", "Wins", "Best", "Average", "Last played")
	fmt.Printf("  %-22s  %-5s  %-5s  %-8s  %-8s  %s\n", "-----", "----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-22s  %-5d  %-5d  %-8d  %-8.0f  %s\n",
			a.levelName(id), st.Runs, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
