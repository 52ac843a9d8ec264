package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// ErrNoSound is returned for handles that do not resolve to a sound.
var ErrNoSound = errors.New("audio: unknown sound")

// Logger is the logging subset the manager needs.
type Logger interface {
	Warn(msg any, keyvals ...any)
	Debug(msg any, keyvals ...any)
}

// SoundManager plays sounds from a table through a single mixer. Every
// method is a no-op until Init succeeds, so a machine without an audio
// device runs silently.
type SoundManager struct {
	mu          sync.Mutex
	sounds      *resource.Table[Sound]
	cfg         config.AudioConfig
	log         Logger
	mixer       *beep.Mixer
	volume      *effects.Volume
	music       *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a manager over the given sound table.
func NewSoundManager(sounds *resource.Table[Sound], cfg config.AudioConfig, log Logger) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		sounds: sounds,
		cfg:    cfg,
		log:    log,
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: cfg.Volume},
		muted:  !cfg.Enabled,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (m *SoundManager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(m.volume)
	m.initialized = true
	return nil
}

// Play starts a new pass of a one-shot sound. Looping sounds go through
// StartMusic instead.
func (m *SoundManager) Play(h resource.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}
	s, err := m.sound(h)
	if err != nil {
		m.warn("play failed", "handle", h, "error", err)
		return
	}

	speaker.Lock()
	m.mixer.Add(s.Streamer(SampleRate))
	speaker.Unlock()
}

// StartMusic loops a track until StopMusic or Close. Disabled music in the
// config or a running track makes it a no-op.
func (m *SoundManager) StartMusic(h resource.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted || !m.cfg.Music {
		return
	}
	if m.music != nil && !m.music.Paused {
		return
	}
	s, err := m.sound(h)
	if err != nil {
		m.warn("music failed", "handle", h, "error", err)
		return
	}

	ctrl := &beep.Ctrl{Streamer: Loop(s)}
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
	m.music = ctrl

	if m.log != nil {
		m.log.Debug("music started", "track", m.sounds.Name(h))
	}
}

// StopMusic pauses the background track.
func (m *SoundManager) StopMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = true
	speaker.Unlock()
	m.music = nil
}

// SetMuted silences or restores output.
func (m *SoundManager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = muted
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.volume.Silent = muted
	if m.music != nil {
		m.music.Paused = muted
	}
	speaker.Unlock()
}

// Muted reports whether output is silenced.
func (m *SoundManager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close stops every stream and releases the speaker.
func (m *SoundManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.mixer.Clear()
	m.music = nil
	m.initialized = false
}

func (m *SoundManager) sound(h resource.Handle) (Sound, error) {
	if m.sounds == nil {
		return Sound{}, ErrNoSound
	}
	s, ok := m.sounds.Get(h)
	if !ok {
		return Sound{}, fmt.Errorf("%w: handle %d", ErrNoSound, h)
	}
	return s, nil
}

func (m *SoundManager) warn(msg string, keyvals ...any) {
	if m.log != nil {
		m.log.Warn(msg, keyvals...)
	}
}

// Loop returns an endless streamer that replays s.
func Loop(s Sound) beep.Streamer {
	return &repeat{next: func() beep.Streamer { return s.Streamer(SampleRate) }}
}
