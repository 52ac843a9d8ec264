// breakthrough is a Breakout arcade game for the terminal, a desktop window,
// or remote play over SSH.
//
// Usage:
//
//	breakthrough play            - Play in the terminal (or a window with --gui)
//	breakthrough menu            - Start menu with play and high scores
//	breakthrough serve           - Start SSH server for remote play
//	breakthrough scores          - Show high scores
//	breakthrough levels          - List levels
//	breakthrough levels check    - Validate level files
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.breakthrough/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <name>  - Override the configured log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakthrough",
	Short: "Breakthrough - Breakout in your terminal",
	Long: `Breakthrough is a Breakout arcade game: bounce the ball off the paddle,
clear every brick, and catch the power-ups the bricks drop.

Available commands:
  play     - Play a level directly
  menu     - Interactive menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - List and validate levels

Examples:
  breakthrough play
  breakthrough play --level 3 --difficulty hard
  breakthrough play --gui
  breakthrough menu
  breakthrough serve --ssh :2222
  breakthrough scores --level 1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakthrough/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
