package reveal

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Text is one animated string. It is created idle with nothing visible.
type Text struct {
	source    string
	visible   string
	animating bool
	run       RunID

	timing   Timing
	clock    Clock
	cue      Cue
	observer Observer
	logger   *log.Logger
}

type Option func(*Text)

// WithTiming overrides the default 60 chars/s, 500 ms cap. Invalid timings
// are ignored.
func WithTiming(t Timing) Option {
	return func(x *Text) {
		if t.Valid() {
			x.timing = t
		}
	}
}

func WithCue(c Cue) Option {
	return func(x *Text) { x.cue = c }
}

func WithObserver(o Observer) Option {
	return func(x *Text) { x.observer = o }
}

func WithLogger(l *log.Logger) Option {
	return func(x *Text) {
		if l != nil {
			x.logger = l
		}
	}
}

func New(source string, clock Clock, opts ...Option) *Text {
	t := &Text{
		source: source,
		timing: DefaultTiming(),
		clock:  clock,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Source() string  { return t.source }
func (t *Text) Visible() string { return t.visible }
func (t *Text) Animating() bool { return t.animating }

// Run returns the id of the most recent run, zero if none was started.
func (t *Text) Run() RunID { return t.run }

func (t *Text) Frame() Frame {
	return Frame{Source: t.source, Visible: t.visible, Animating: t.animating}
}

// StartReveal begins typing the source text in. An empty source is a no-op.
// A run already in progress is superseded.
func (t *Text) StartReveal() Effect {
	if t.source == "" {
		return none()
	}
	if t.cue != nil {
		t.cue.Play()
	}
	return t.start(Reveal)
}

// startConceal begins erasing the text. No host triggers it; it exists so the
// symmetric tick machinery can be driven directly.
func (t *Text) startConceal() Effect {
	if t.source == "" {
		return none()
	}
	return t.start(Conceal)
}

func (t *Text) start(d Direction) Effect {
	total := Length(t.source)
	if total == 0 {
		return none()
	}

	t.run++
	t.animating = true
	if d == Reveal {
		t.visible = t.source
	}

	p := TickParams{
		Run:       t.run,
		Direction: d,
		Text:      t.source,
		Start:     t.clock.Now(),
		Duration:  t.timing.Duration(total),
	}
	t.logger.Debug("run started", "run", p.Run, "direction", d, "chars", total, "duration", p.Duration)
	return tickEffect(p)
}

// Stop cancels the current run. Calling it again has no further effect.
func (t *Text) Stop() Effect {
	if t.animating {
		t.logger.Debug("run stopped", "run", t.run)
	}
	t.animating = false
	return none()
}

// Finish handles a stop effect delivered by the host. A stop belonging to a
// superseded run is ignored.
func (t *Text) Finish(run RunID) Effect {
	if run != t.run {
		t.logger.Debug("stale stop dropped", "run", run, "current", t.run)
		return none()
	}
	return t.Stop()
}

// Tick recomputes the visible prefix for the run described by p and asks for
// either another tick with the same parameters or a stop.
func (t *Text) Tick(p TickParams) Effect {
	if !t.animating || p.Run != t.run {
		t.logger.Debug("stale tick dropped", "run", p.Run, "current", t.run, "animating", t.animating)
		return none()
	}

	elapsed := math.Max(t.clock.Now()-p.Start, 0)
	progress := elapsed
	if p.Direction == Conceal {
		progress = p.Duration - elapsed
	}

	total := Length(p.Text)
	target := TargetLength(progress, p.Duration, total)
	t.visible = Truncate(p.Text, target)
	cont := ShouldContinue(p.Direction, target, total)

	t.logger.Debug("tick", "run", p.Run, "elapsed", elapsed, "target", target, "total", total, "continue", cont)
	if t.observer != nil {
		t.observer.OnTick(Sample{
			Run:       p.Run,
			Direction: p.Direction,
			Elapsed:   elapsed,
			Progress:  progress,
			Duration:  p.Duration,
			Target:    target,
			Total:     total,
			Visible:   t.visible,
			Continue:  cont,
		})
	}

	if cont {
		return tickEffect(p)
	}
	return stopEffect(p)
}
