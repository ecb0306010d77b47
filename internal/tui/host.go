package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/typefx/internal/reveal"
)

// tickMsg delivers a scheduled tick to paragraph id.
type tickMsg struct {
	id     int
	params reveal.TickParams
}

// stopMsg delivers a scheduled stop to paragraph id.
type stopMsg struct {
	id  int
	run reveal.RunID
}

// cmdHost is a reveal.Scheduler that records the effect as a tea.Cmd. Ticks
// wait one frame; stops are delivered on the next Update.
type cmdHost struct {
	id    int
	frame time.Duration
	cmd   tea.Cmd
}

func (h *cmdHost) ScheduleTick(p reveal.TickParams) {
	id := h.id
	h.cmd = tea.Tick(h.frame, func(time.Time) tea.Msg {
		return tickMsg{id: id, params: p}
	})
}

func (h *cmdHost) ScheduleStop(run reveal.RunID) {
	id := h.id
	h.cmd = func() tea.Msg {
		return stopMsg{id: id, run: run}
	}
}

func (m Model) schedule(id int, e reveal.Effect) tea.Cmd {
	h := &cmdHost{id: id, frame: m.frame}
	e.Apply(h)
	return h.cmd
}
