package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

// maxVoices caps overlapping cues; extra cues are dropped.
const maxVoices = 8

// Player is an arkanoid.AudioSink backed by the system speaker. Play never
// blocks the caller on audio output.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	master float64
	mixer  *beep.Mixer
	cues   map[arkanoid.Cue]*beep.Buffer
	lock   func()
	unlock func()
	closed bool
	log    *log.Logger
}

var _ arkanoid.AudioSink = (*Player)(nil)

// New opens the speaker. Callers fall back to Silent when it fails.
func New(cfg config.AudioConfig, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := newPlayer(rate, cfg.MasterVolume, logger)
	p.lock, p.unlock = speaker.Lock, speaker.Unlock
	speaker.Play(p.mixer)
	logger.Debug("audio ready", "rate", int(rate), "master", cfg.MasterVolume)
	return p, nil
}

// newPlayer renders the cues and builds a player whose mixer is not attached
// to any output.
func newPlayer(rate beep.SampleRate, master float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	noop := func() {}
	return &Player{
		rate:   rate,
		master: master,
		mixer:  &beep.Mixer{},
		cues:   RenderCues(rate),
		lock:   noop,
		unlock: noop,
		log:    logger,
	}
}

// Play queues cue at volume in [0, 1], scaled by the master volume.
func (p *Player) Play(cue arkanoid.Cue, volume float64) {
	vol := volume * p.master
	if vol <= 0 {
		return
	}
	buf, ok := p.cues[cue]
	if !ok {
		p.log.Debug("unknown cue", "cue", int(cue))
		return
	}
	s := buf.Streamer(0, buf.Len())

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	p.lock()
	defer p.unlock()
	if p.mixer.Len() >= maxVoices {
		return
	}
	p.mixer.Add(newVolume(s, vol))
}

// Voices returns the number of cues still playing.
func (p *Player) Voices() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close silences the player. Later Play calls are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.lock()
	p.mixer.Clear()
	p.unlock()
}

// Silent is a sink that discards every cue. Used when audio is disabled or
// the speaker cannot be opened.
type Silent struct{}

func (Silent) Play(arkanoid.Cue, float64) {}

// Open returns a speaker-backed sink, or Silent when audio is disabled or
// unavailable. closeFn releases the speaker and is always safe to call.
func Open(cfg config.AudioConfig, logger *log.Logger) (sink arkanoid.AudioSink, closeFn func()) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		return Silent{}, func() {}
	}
	p, err := New(cfg, logger)
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return Silent{}, func() {}
	}
	return p, p.Close
}
