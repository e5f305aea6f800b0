// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesized into memory when the player is built; nothing is
// loaded from disk.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates a fixed-length tone.
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a streamer producing duration worth of the wave.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(duration),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(freq*1000) + 1)), //#nosec G404 -- audio noise
	}
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
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
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

// envelope shapes a stream with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with an attack/release envelope over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one shaped oscillator.
func tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 2*time.Millisecond, d/2, rate)
}

// CueDuration is how long each synthesized cue lasts.
func CueDuration(cue arkanoid.Cue) time.Duration {
	switch cue {
	case arkanoid.CueBouncePaddle:
		return 70 * time.Millisecond
	case arkanoid.CueBounceWall:
		return 40 * time.Millisecond
	case arkanoid.CueBlockHit:
		return 60 * time.Millisecond
	case arkanoid.CueBlockBreak:
		return 140 * time.Millisecond
	case arkanoid.CueSteelHit:
		return 120 * time.Millisecond
	default:
		return 0
	}
}

// NewCue builds a fresh streamer for cue. Nil for unknown cues.
func NewCue(cue arkanoid.Cue, rate beep.SampleRate) beep.Streamer {
	d := CueDuration(cue)
	switch cue {
	case arkanoid.CueBouncePaddle:
		// Low blip sliding up a fifth
		half := d / 2
		return beep.Seq(tone(392, half, WaveSquare, rate), tone(587.33, d-half, WaveSquare, rate))
	case arkanoid.CueBounceWall:
		return tone(660, d, WaveTriangle, rate)
	case arkanoid.CueBlockHit:
		return tone(880, d, WaveSquare, rate)
	case arkanoid.CueBlockBreak:
		return beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, d*3/4, rate), 0.6),
			newVolume(tone(220, d, WaveTriangle, rate), 0.6),
		)
	case arkanoid.CueSteelHit:
		// Inharmonic partials read as metal
		return beep.Mix(
			newVolume(tone(1250, d, WaveSine, rate), 0.5),
			newVolume(tone(1870, d, WaveSine, rate), 0.3),
			newVolume(tone(2730, d, WaveSine, rate), 0.2),
		)
	default:
		return nil
	}
}

// cueFormat is the in-memory format of rendered cues.
func cueFormat(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

// RenderCues synthesizes every known cue once into a buffer.
func RenderCues(rate beep.SampleRate) map[arkanoid.Cue]*beep.Buffer {
	out := make(map[arkanoid.Cue]*beep.Buffer, len(arkanoid.Cues))
	for _, cue := range arkanoid.Cues {
		s := NewCue(cue, rate)
		if s == nil {
			continue
		}
		buf := beep.NewBuffer(cueFormat(rate))
		buf.Append(s)
		out[cue] = buf
	}
	return out
}
