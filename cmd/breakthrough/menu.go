package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends with Esc, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  breakthrough menu
  breakthrough menu --fps 30
  breakthrough menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp(flagDifficulty, true)
	if err != nil {
		return err
	}
	defer a.close()
	a.openAudio(flagMute)

	glyphs := tui.DefaultGlyphs()
	rt := runtimeConfig()
	return tui.RunSession(tui.SessionOptions{
		Options: tui.Options{
			Store:  a.store,
			Music:  a.audio,
			Logger: a.log.With("tui"),
			Glyphs: glyphs,
			Player: playerName(),
			FPS:    rt.TickRate,
			Width:  rt.ScreenW,
			Height: rt.ScreenH,
		},
		NewGame:    func() (*breakout.Game, error) { return a.newGame(glyphs) },
		LevelNames: a.levelNames(),
	})
}
