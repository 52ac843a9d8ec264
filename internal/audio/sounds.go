// Package audio synthesizes and plays the game's sound cues with beep.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/breakthrough/internal/resource"
)

// SampleRate is the output rate of every synthesized stream.
const SampleRate = beep.SampleRate(48000)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Note is one tone of a sound. A zero Freq is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
	Wave     WaveType
	Gain     float64 // Linear, 0..1
}

// Sound is a sequence of notes played back to back.
type Sound struct {
	Notes []Note
	// Loop marks background tracks that repeat until stopped.
	Loop bool
}

// Len returns the total duration of one pass.
func (s Sound) Len() time.Duration {
	var d time.Duration
	for _, n := range s.Notes {
		d += n.Duration
	}
	return d
}

// Streamer renders one pass of the sound at the given rate.
func (s Sound) Streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(s.Notes))
	for _, n := range s.Notes {
		samples := rate.N(n.Duration)
		if samples <= 0 {
			continue
		}
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		osc := newOscillator(n.Freq, samples, n.Wave, rate)
		shaped := newEnvelope(osc, samples, rate.N(5*time.Millisecond), rate.N(n.Duration/3))
		parts = append(parts, gain(shaped, n.Gain))
	}
	return beep.Seq(parts...)
}

// oscillator generates a raw periodic wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, length int, wave WaveType, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, length: length, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1 //#nosec G404 -- audio noise
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over the last
// release samples of total.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain scales a stream linearly. effects.Volume works in log space, so 0
// maps to a silent stream.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// repeat plays a fresh pass of a sound every time the previous one ends.
type repeat struct {
	next  func() beep.Streamer
	cur   beep.Streamer
	fresh bool // cur has not produced a sample yet
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if r.cur == nil {
			r.cur = r.next()
			r.fresh = true
		}
		got, more := r.cur.Stream(samples[n:])
		n += got
		if got > 0 {
			r.fresh = false
		}
		if !more {
			// A pass that yields nothing would spin forever
			if r.fresh {
				return n, n > 0
			}
			r.cur = nil
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }

// Note frequencies used by the built-in sounds.
const (
	noteA2 = 110.00
	noteE3 = 164.81
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
)

// DefaultSounds returns the synthesized sound set registered under the
// names the game looks up.
func DefaultSounds() *resource.Table[Sound] {
	t := resource.NewTable[Sound]()

	t.Register(resource.SoundBleep, Sound{Notes: []Note{
		{Freq: noteE5, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.25},
	}})
	t.Register(resource.SoundSolid, Sound{Notes: []Note{
		{Freq: noteA2, Duration: 90 * time.Millisecond, Wave: WaveSaw, Gain: 0.3},
		{Freq: 0, Duration: 10 * time.Millisecond},
		{Freq: noteA2, Duration: 40 * time.Millisecond, Wave: WaveNoise, Gain: 0.15},
	}})
	t.Register(resource.SoundPowerUp, Sound{Notes: []Note{
		{Freq: noteC5, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: noteE5, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: noteG5, Duration: 120 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
	}})

	beat := 250 * time.Millisecond
	var music []Note
	for _, f := range []float64{noteA3, noteC4, noteE4, noteA4, noteG4, noteE4, noteC4, noteE3} {
		music = append(music, Note{Freq: f, Duration: beat, Wave: WaveSquare, Gain: 0.08})
	}
	t.Register(resource.SoundMusic, Sound{Notes: music, Loop: true})

	return t
}
