package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/breakthrough/internal/audio"
	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/core"
	"github.com/vovakirdan/breakthrough/internal/games/breakout"
	"github.com/vovakirdan/breakthrough/internal/levels"
	"github.com/vovakirdan/breakthrough/internal/logging"
	"github.com/vovakirdan/breakthrough/internal/resource"
	"github.com/vovakirdan/breakthrough/internal/storage"
)

// app holds what every command shares: config, logger, levels and the
// optional score store.
type app struct {
	cfg    config.BreakoutConfig
	log    *logging.Async
	levels []levels.Level
	sounds *resource.Table[audio.Sound]
	store  *storage.Store // Nil when the database could not be opened
	audio  *audio.SoundManager

	logFile *os.File
}

// newApp loads the configuration with the difficulty applied, starts the
// logger, loads the levels and opens the score store. Interactive commands
// own the terminal, so their log goes to ~/.breakthrough/breakthrough.log.
func newApp(difficulty string, interactive bool) (*app, error) {
	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyBreakoutPreset(&cfg, preset)

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	var out io.Writer = os.Stderr
	var logFile *os.File
	if interactive {
		logFile = openLogFile()
		out = io.Discard
		if logFile != nil {
			out = logFile
		}
	}
	logger, err := logging.New(out, logging.Options{
		Level:      level,
		Buffer:     cfg.Log.Buffer,
		Prefix:     "breakthrough",
		Timestamps: true,
	})
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	lvls, err := levels.Load(cfg.Levels.Dir)
	if err != nil {
		logger.Close()
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	a := &app{cfg: cfg, log: logger, levels: lvls, sounds: audio.DefaultSounds(), logFile: logFile}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
	} else {
		a.store = store
	}
	return a, nil
}

// openAudio starts the speaker. A machine without an audio device plays
// silently.
func (a *app) openAudio(mute bool) {
	a.audio = audio.NewSoundManager(a.sounds, a.cfg.Audio, a.log.With("audio"))
	if err := a.audio.Init(); err != nil {
		a.log.Warn("audio disabled", "error", err)
	}
	if mute {
		a.audio.SetMuted(true)
	}
}

// newGame builds a game whose sprites resolve against textures. Sound cues
// go to the speaker only after openAudio.
func (a *app) newGame(textures resource.Resolver) (*breakout.Game, error) {
	opts := breakout.Options{
		Config:   a.cfg,
		Levels:   a.levels,
		Textures: textures,
		Sounds:   a.sounds,
		Logger:   a.log.With("game"),
		Seed:     seed(),
	}
	if a.audio != nil {
		opts.Audio = a.audio
	}
	return breakout.New(opts)
}

func (a *app) levelNames() []string {
	names := make([]string, len(a.levels))
	for i, l := range a.levels {
		names[i] = l.Name
	}
	return names
}

// levelName returns the name of a stored level index, which may belong to a
// level set that is no longer loaded.
func (a *app) levelName(i int) string {
	if i >= 0 && i < len(a.levels) {
		return a.levels[i].Name
	}
	return fmt.Sprintf("Level %d", i+1)
}

func (a *app) close() {
	if a.audio != nil {
		a.audio.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	a.log.Close()
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func openLogFile() *os.File {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	dir := filepath.Join(home, ".breakthrough")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, "breakthrough.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil
	}
	return f
}

// seed returns the --seed value, or a time-based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// playerName is the local account name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// levelIndex converts a 1-based --level flag into an index. 0 keeps the
// first level.
func levelIndex(flag, count int) (int, error) {
	if flag == 0 {
		return 0, nil
	}
	if flag < 0 || flag > count {
		return 0, fmt.Errorf("level %d out of range (1-%d)", flag, count)
	}
	return flag - 1, nil
}
