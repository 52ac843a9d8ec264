package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakthrough/internal/platform/gui"
	"github.com/vovakirdan/breakthrough/internal/platform/tui"
)

var (
	flagLevel      int
	flagDifficulty string
	flagGUI        bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the terminal, or in a window with --gui.

Controls:
  A/D, Left/Right  - Move the paddle
  Space            - Launch the ball
  W/S, Up/Down     - Pick a level in the menu
  Enter            - Start the level
  P                - Pause
  M                - Mute
  Esc              - Leave the game
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - The configured values
  hard   - Fewer lives, narrower paddle, faster ball

Examples:
  breakthrough play
  breakthrough play --level 2
  breakthrough play --difficulty hard
  breakthrough play --gui --mute
  breakthrough play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (1-based)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) error {
	a, err := newApp(flagDifficulty, true)
	if err != nil {
		return err
	}
	defer a.close()

	index, err := levelIndex(flagLevel, len(a.levels))
	if err != nil {
		return err
	}
	a.openAudio(flagMute)

	if flagGUI {
		game, err := a.newGame(gui.DefaultSprites())
		if err != nil {
			return err
		}
		if err := game.SelectLevel(index); err != nil {
			return err
		}
		return gui.Run(game, gui.Options{
			Store:  a.store,
			Music:  a.audio,
			Logger: a.log.With("gui"),
			Player: playerName(),
			FPS:    flagFPS,
		})
	}

	glyphs := tui.DefaultGlyphs()
	game, err := a.newGame(glyphs)
	if err != nil {
		return err
	}
	if err := game.SelectLevel(index); err != nil {
		return err
	}

	rt := runtimeConfig()
	return tui.Run(game, tui.Options{
		Store:  a.store,
		Music:  a.audio,
		Logger: a.log.With("tui"),
		Glyphs: glyphs,
		Player: playerName(),
		FPS:    rt.TickRate,
		Width:  rt.ScreenW,
		Height: rt.ScreenH,
	})
}
