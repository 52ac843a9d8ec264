package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels in play order with their brick counts.

Without --dir the levels come from the configured directory, or the
built-in set when none is configured.

Examples:
  breakthrough levels
  breakthrough levels --dir ./my-levels
  breakthrough levels check ./my-levels/*.lvl`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate level files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLevelsCheck,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of .lvl/.yaml level files")
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	dir := flagLevelsDir
	if dir == "" {
		cfg, err := config.LoadBreakout(flagConfig)
		if err != nil {
			return err
		}
		dir = cfg.Levels.Dir
	}

	lvls, err := levels.Load(dir)
	if err != nil {
		return err
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range lvls {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-7s  %-6s  %s\n", "#", maxNameLen, "Name", "Size", "Bricks", "Solid")
	fmt.Printf("  %-3s  %-*s  %-7s  %-6s  %s\n", "-", maxNameLen, "----", "----", "------", "-----")
	for i, l := range lvls {
		info := l.Info()
		size := fmt.Sprintf("%dx%d", info.Cols, info.Rows)
		fmt.Printf("  %-3d  %-*s  %-7s  %-6d  %d\n", i+1, maxNameLen, info.Name, size, info.Destructible, info.Solid)
	}

	fmt.Println()
	fmt.Println("Run 'breakthrough play --level <#>' to play a level.")
	return nil
}

func runLevelsCheck(_ *cobra.Command, args []string) error {
	failed := 0
	for _, name := range args {
		if err := checkLevelFile(name); err != nil {
			fmt.Printf("FAIL  %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s\n", name)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(args))
	}
	return nil
}

func checkLevelFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	level, err := levels.ParseFile(filepath.Base(name), data)
	if err != nil {
		return err
	}
	if err := level.Validate(); err != nil {
		return err
	}
	if d, _ := level.Count(); d == 0 {
		return errors.New("no destructible bricks")
	}
	return nil
}
