// Package clock provides millisecond clocks for driving animations.
package clock

import "time"

// Wall reports milliseconds elapsed since it was created, read from the
// monotonic clock.
type Wall struct {
	origin time.Time
}

func NewWall() *Wall {
	return &Wall{origin: time.Now()}
}

func (w *Wall) Now() float64 {
	return float64(time.Since(w.origin)) / float64(time.Millisecond)
}

// Manual only moves when told to. It is used for virtual-time playback and
// tests. Not safe for concurrent use.
type Manual struct {
	now float64
}

func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() float64 { return m.now }

func (m *Manual) Set(ms float64) { m.now = ms }

func (m *Manual) Advance(ms float64) { m.now += ms }
