// Package loop is a headless host for reveal animations. It delivers
// scheduled ticks one frame at a time on the calling goroutine.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/typefx/internal/clock"
	"github.com/san-kum/typefx/internal/reveal"
)

const DefaultFrameRate = 60

// Handler receives delivered effects. *reveal.Text implements it.
type Handler interface {
	Tick(p reveal.TickParams) reveal.Effect
	Finish(run reveal.RunID) reveal.Effect
}

// FrameFunc is called after each frame's deliveries.
type FrameFunc func(frame int)

type Stats struct {
	Frames int
	Ticks  int
	Stops  int
}

type event struct {
	kind   reveal.EffectKind
	params reveal.TickParams
}

// Loop is a reveal.Scheduler. Effects applied to it are queued and delivered
// by Run.
type Loop struct {
	handler   Handler
	frameRate int
	virtual   *clock.Manual
	maxFrames int
	onFrame   FrameFunc
	logger    *log.Logger

	queue []event
	stats Stats
}

type Option func(*Loop)

func WithFrameRate(fps int) Option {
	return func(l *Loop) {
		if fps > 0 {
			l.frameRate = fps
		}
	}
}

// WithVirtualClock advances c by one frame per turn instead of sleeping.
func WithVirtualClock(c *clock.Manual) Option {
	return func(l *Loop) { l.virtual = c }
}

func WithMaxFrames(n int) Option {
	return func(l *Loop) { l.maxFrames = n }
}

func WithFrameFunc(f FrameFunc) Option {
	return func(l *Loop) { l.onFrame = f }
}

func WithLogger(lg *log.Logger) Option {
	return func(l *Loop) {
		if lg != nil {
			l.logger = lg
		}
	}
}

func New(h Handler, opts ...Option) *Loop {
	l := &Loop{
		handler:   h,
		frameRate: DefaultFrameRate,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loop) ScheduleTick(p reveal.TickParams) {
	l.queue = append(l.queue, event{kind: reveal.EffectTick, params: p})
}

func (l *Loop) ScheduleStop(run reveal.RunID) {
	l.queue = append(l.queue, event{kind: reveal.EffectStop, params: reveal.TickParams{Run: run}})
}

func (l *Loop) Dispatch(e reveal.Effect) {
	e.Apply(l)
}

func (l *Loop) Pending() int { return len(l.queue) }

// FrameInterval is the wait between frames in milliseconds.
func (l *Loop) FrameInterval() float64 {
	return 1000.0 / float64(l.frameRate)
}

// Run delivers queued effects until the queue drains. Ticks wait for the
// next frame; stops are delivered on the next turn without waiting.
func (l *Loop) Run(ctx context.Context) (Stats, error) {
	var ticker *time.Ticker
	if l.virtual == nil {
		ticker = time.NewTicker(time.Second / time.Duration(l.frameRate))
		defer ticker.Stop()
	}

	for len(l.queue) > 0 {
		select {
		case <-ctx.Done():
			return l.stats, ctx.Err()
		default:
		}

		if l.maxFrames > 0 && l.stats.Frames >= l.maxFrames {
			return l.stats, ErrFrameLimit
		}

		if l.hasTick() {
			if l.virtual != nil {
				l.virtual.Advance(l.FrameInterval())
			} else {
				select {
				case <-ctx.Done():
					return l.stats, ctx.Err()
				case <-ticker.C:
				}
			}
		}

		batch := l.queue
		l.queue = nil
		for _, ev := range batch {
			l.deliver(ev)
		}

		l.stats.Frames++
		if l.onFrame != nil {
			l.onFrame(l.stats.Frames)
		}
	}

	l.logger.Debug("loop drained", "frames", l.stats.Frames, "ticks", l.stats.Ticks, "stops", l.stats.Stops)
	return l.stats, nil
}

func (l *Loop) hasTick() bool {
	for _, ev := range l.queue {
		if ev.kind == reveal.EffectTick {
			return true
		}
	}
	return false
}

func (l *Loop) deliver(ev event) {
	var next reveal.Effect
	switch ev.kind {
	case reveal.EffectTick:
		l.stats.Ticks++
		next = l.handler.Tick(ev.params)
	case reveal.EffectStop:
		l.stats.Stops++
		next = l.handler.Finish(ev.params.Run)
	}
	next.Apply(l)
}
