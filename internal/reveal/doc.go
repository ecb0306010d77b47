// Package reveal implements a time-driven typewriter animation for a fixed
// string of text.
//
// A [Text] owns the full source string and the prefix of it currently shown.
// Starting a run stamps a start time and a capped duration; every tick
// recomputes the visible prefix from the absolute elapsed time, so late or
// missed ticks correct themselves instead of accumulating drift.
//
// The package never blocks and never starts goroutines. Each operation
// returns an [Effect] that the host applies to a [Scheduler]:
//
//	t := reveal.New("hello", clock.NewWall())
//	eff := t.StartReveal()
//	eff.Apply(host) // host later calls t.Tick(params) with the same params
//
// # Thread Safety
//
// A Text is not safe for concurrent use. Hosts must deliver ticks for one
// Text serially, which both the bubbletea host and the headless loop do.
package reveal
