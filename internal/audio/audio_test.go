package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/breakthrough/internal/config"
	"github.com/vovakirdan/breakthrough/internal/resource"
)

// drain reads a finite streamer to the end and returns all samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()

	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not end")
	return nil
}

func TestSoundStreamerLength(t *testing.T) {
	s := Sound{Notes: []Note{
		{Freq: 440, Duration: 10 * time.Millisecond, Wave: WaveSine, Gain: 1},
		{Freq: 0, Duration: 5 * time.Millisecond},
		{Freq: 220, Duration: 10 * time.Millisecond, Wave: WaveSquare, Gain: 0.5},
	}}

	got := len(drain(t, s.Streamer(SampleRate)))
	want := SampleRate.N(10*time.Millisecond)*2 + SampleRate.N(5*time.Millisecond)
	if got != want {
		t.Errorf("samples = %d, expected %d", got, want)
	}
	if s.Len() != 25*time.Millisecond {
		t.Errorf("Len = %v, expected 25ms", s.Len())
	}
}

func TestOscillatorRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := newOscillator(440, 2000, wave, SampleRate)
		samples := drain(t, osc)
		if len(samples) != 2000 {
			t.Errorf("wave %d: %d samples, expected 2000", wave, len(samples))
		}
		for _, smp := range samples {
			if math.Abs(smp[0]) > 1 || smp[0] != smp[1] {
				t.Fatalf("wave %d: sample %v out of range or not mono", wave, smp)
			}
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	osc := newOscillator(100, 1000, WaveSquare, SampleRate)
	samples := drain(t, newEnvelope(osc, 1000, 100, 100))

	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, expected silent attack start", samples[0][0])
	}
	if math.Abs(samples[500][0]) != 1 {
		t.Errorf("sustain sample = %v, expected full level", samples[500][0])
	}
	if last := math.Abs(samples[999][0]); last > 0.02 {
		t.Errorf("last sample = %v, expected faded out", last)
	}
}

func TestSilentGain(t *testing.T) {
	samples := drain(t, gain(newOscillator(440, 100, WaveSquare, SampleRate), 0))
	for _, smp := range samples {
		if smp[0] != 0 {
			t.Fatalf("gain 0 produced %v", smp)
		}
	}
}

func TestLoopIsEndless(t *testing.T) {
	s := Sound{Notes: []Note{{Freq: 440, Duration: time.Millisecond, Wave: WaveSine, Gain: 1}}}
	loop := Loop(s)

	buf := make([][2]float64, SampleRate.N(20*time.Millisecond))
	n, ok := loop.Stream(buf)
	if n != len(buf) || !ok {
		t.Errorf("Stream = (%d, %v), expected (%d, true)", n, ok, len(buf))
	}
}

func TestLoopOfEmptySoundStops(t *testing.T) {
	n, ok := Loop(Sound{}).Stream(make([][2]float64, 64))
	if n != 0 || ok {
		t.Errorf("Stream = (%d, %v), expected (0, false)", n, ok)
	}
}

func TestDefaultSoundsCoverGameNames(t *testing.T) {
	sounds := DefaultSounds()

	handles, err := resource.LookupAll(sounds, resource.SoundNames...)
	if err != nil {
		t.Fatalf("LookupAll() error: %v", err)
	}
	for name, h := range handles {
		s, ok := sounds.Get(h)
		if !ok || len(s.Notes) == 0 {
			t.Errorf("sound %q is empty", name)
		}
		if s.Loop != (name == resource.SoundMusic) {
			t.Errorf("sound %q Loop = %v", name, s.Loop)
		}
	}
}

func TestSoundManagerWithoutInit(t *testing.T) {
	m := NewSoundManager(DefaultSounds(), config.AudioConfig{Enabled: true, Music: true}, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("operations panicked without Init: %v", r)
		}
	}()

	m.Play(1)
	m.StartMusic(4)
	m.StopMusic()
	m.SetMuted(true)
	m.Close()
}

func TestSoundManagerMutedByConfig(t *testing.T) {
	m := NewSoundManager(DefaultSounds(), config.AudioConfig{Enabled: false}, nil)
	if !m.Muted() {
		t.Error("disabled audio should start muted")
	}
	m.SetMuted(false)
	if m.Muted() {
		t.Error("SetMuted(false) should unmute")
	}
}

func TestSoundManagerUnknownHandle(t *testing.T) {
	m := NewSoundManager(DefaultSounds(), config.AudioConfig{}, nil)
	if _, err := m.sound(99); !errors.Is(err, ErrNoSound) {
		t.Errorf("sound(99) error = %v, expected ErrNoSound", err)
	}

	empty := NewSoundManager(nil, config.AudioConfig{}, nil)
	if _, err := empty.sound(1); !errors.Is(err, ErrNoSound) {
		t.Errorf("sound without table error = %v, expected ErrNoSound", err)
	}
}

// TestSoundManagerInit only exercises the speaker where a device exists.
func TestSoundManagerInit(t *testing.T) {
	m := NewSoundManager(DefaultSounds(), config.AudioConfig{Enabled: true}, nil)
	if err := m.Init(); err != nil {
		t.Logf("speaker unavailable: %v", err)
		return
	}
	if err := m.Init(); err != nil {
		t.Errorf("second Init error: %v", err)
	}
	m.Close()
}
