package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/san-kum/typefx/internal/clock"
	"github.com/san-kum/typefx/internal/reveal"
)

const (
	defaultFrameRate = 60
	defaultCaret     = "█"
	defaultBlinkMs   = 250
	defaultWidth     = 72
)

type Options struct {
	Texts     []string
	Timing    reveal.Timing
	FrameRate int
	Theme     string
	Caret     string
	BlinkMs   int
	Width     int
	Clock     reveal.Clock
	Cue       reveal.Cue
	Logger    *log.Logger
}

// Model is a page of paragraphs revealed one after another.
type Model struct {
	texts  []*reveal.Text
	clock  reveal.Clock
	logger *log.Logger

	frame   time.Duration
	caret   string
	blinkMs int
	width   int
	theme   Theme
	styles  styles

	cursor int
	shown  int
}

func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.NewWall()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = defaultFrameRate
	}
	if opts.Caret == "" {
		opts.Caret = defaultCaret
	}
	if opts.BlinkMs < 0 {
		opts.BlinkMs = defaultBlinkMs
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	textOpts := []reveal.Option{reveal.WithTiming(opts.Timing), reveal.WithLogger(opts.Logger)}
	if opts.Cue != nil {
		textOpts = append(textOpts, reveal.WithCue(opts.Cue))
	}

	texts := make([]*reveal.Text, len(opts.Texts))
	for i, s := range opts.Texts {
		texts[i] = reveal.New(s, opts.Clock, textOpts...)
	}

	theme := GetTheme(opts.Theme)
	m := Model{
		texts:   texts,
		clock:   opts.Clock,
		logger:  opts.Logger,
		frame:   time.Second / time.Duration(opts.FrameRate),
		caret:   opts.Caret,
		blinkMs: opts.BlinkMs,
		width:   opts.Width,
		theme:   theme,
		styles:  newStyles(theme),
	}
	if len(texts) > 0 {
		m.shown = 1
	}
	return m
}

// Init reveals the first paragraph.
func (m Model) Init() tea.Cmd {
	if len(m.texts) == 0 {
		return nil
	}
	return m.reveal(0)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.width = min(msg.Width-4, defaultWidth)
		}
		return m, nil
	case tickMsg:
		if !m.valid(msg.id) {
			return m, nil
		}
		return m, m.schedule(msg.id, m.texts[msg.id].Tick(msg.params))
	case stopMsg:
		if !m.valid(msg.id) {
			return m, nil
		}
		return m, m.schedule(msg.id, m.texts[msg.id].Finish(msg.run))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		for _, t := range m.texts {
			t.Stop()
		}
		return m, tea.Quit
	case "enter", " ":
		if len(m.texts) > 0 {
			return m, m.reveal(m.cursor)
		}
	case "n", "down", "j":
		if m.cursor < len(m.texts)-1 {
			m.cursor++
			m.shown = max(m.shown, m.cursor+1)
			return m, m.reveal(m.cursor)
		}
	case "p", "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "a":
		m.shown = len(m.texts)
		cmds := make([]tea.Cmd, len(m.texts))
		for i := range m.texts {
			cmds[i] = m.reveal(i)
		}
		return m, tea.Batch(cmds...)
	case "s":
		if len(m.texts) > 0 {
			m.texts[m.cursor].Stop()
		}
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		m.logger.Info("theme changed", "theme", m.theme.Name)
	}
	return m, nil
}

func (m Model) reveal(id int) tea.Cmd {
	return m.schedule(id, m.texts[id].StartReveal())
}

func (m Model) valid(id int) bool {
	return id >= 0 && id < len(m.texts)
}

// Frames returns the current frame of every paragraph.
func (m Model) Frames() []reveal.Frame {
	frames := make([]reveal.Frame, len(m.texts))
	for i, t := range m.texts {
		frames[i] = t.Frame()
	}
	return frames
}

func (m Model) Cursor() int       { return m.cursor }
func (m Model) ThemeName() string { return m.theme.Name }

// Animating reports whether any paragraph is mid-run.
func (m Model) Animating() bool {
	for _, t := range m.texts {
		if t.Animating() {
			return true
		}
	}
	return false
}
