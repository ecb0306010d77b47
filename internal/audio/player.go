// Package audio plays the typing cue that accompanies a reveal.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickCount = 8
	clickGap   = time.Second / 60
)

type Config struct {
	Enabled bool
	File    string  // optional mp3; synthesized clicks when empty
	Volume  float64 // linear gain, 1 is unchanged
}

// Output is where decoded sound goes. The default is the system speaker.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }

func (speakerOutput) Close() { speaker.Close() }

// Player is a reveal.Cue. It never reports failures to its caller: if the
// device or the sound file is unusable it logs once and stays silent.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	out         Output
	logger      *log.Logger
	buffer      *beep.Buffer
	initialized bool
	plays       int
}

type Option func(*Player)

func WithOutput(o Output) Option {
	return func(p *Player) { p.out = o }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewPlayer(cfg Config, opts ...Option) *Player {
	p := &Player{
		cfg:    cfg,
		out:    speakerOutput{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init opens the output and prepares the cue. It is safe to call more than
// once. A returned error leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	buf, err := p.load()
	if err != nil {
		p.logger.Warn("typing sound unavailable", "file", p.cfg.File, "err", err)
		return err
	}

	if err := p.out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio output unavailable", "err", err)
		return fmt.Errorf("init audio output: %w", err)
	}

	p.buffer = buf
	p.initialized = true
	return nil
}

func (p *Player) load() (*beep.Buffer, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	if p.cfg.File == "" {
		buf.Append(NewKeyClicks(sampleRate, clickCount, clickGap))
		return buf, nil
	}

	f, err := os.Open(p.cfg.File)
	if err != nil {
		return nil, err
	}
	stream, srcFormat, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", p.cfg.File, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if srcFormat.SampleRate != sampleRate {
		s = beep.Resample(4, srcFormat.SampleRate, sampleRate, stream)
	}
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.cfg.File, err)
	}
	return buf, nil
}

// Play starts the cue and returns immediately.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.plays++
	p.out.Play(withVolume(p.buffer.Streamer(0, p.buffer.Len()), p.cfg.Volume))
}

// Plays reports how many cues were handed to the output.
func (p *Player) Plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.out.Close()
	p.initialized = false
}

// withVolume maps a linear gain onto beep's logarithmic volume.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol == 1 {
		return s
	}
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
