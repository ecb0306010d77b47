package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/typefx/internal/reveal"
)

func (m Model) View() string {
	var b strings.Builder

	status := "idle"
	if m.Animating() {
		status = "typing"
	}
	title := fmt.Sprintf("typefx · %s · %s", m.theme.Name, status)
	if len(m.texts) > 0 {
		if f := m.texts[m.cursor].Frame(); f.Animating {
			title += "  " + progressBar(typedFraction(f), 20)
		}
	}
	b.WriteString(m.styles.title.Render(title))
	b.WriteString("\n")

	for i := 0; i < m.shown && i < len(m.texts); i++ {
		marker := "  "
		if i == m.cursor {
			marker = m.styles.selected.Render("› ")
		}
		b.WriteString(marker)
		b.WriteString(m.renderFrame(m.texts[i].Frame(), i == m.cursor))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.muted.Render("enter replay · n next · p prev · a all · s stop · t theme · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderFrame draws the static layer, or while animating the typed prefix
// and caret padded to the source width so the layer below stays hidden.
func (m Model) renderFrame(f reveal.Frame, selected bool) string {
	box := lipgloss.NewStyle().Width(m.width)

	base := m.styles.text
	if selected {
		base = m.styles.active
	}

	if !f.Animating {
		return box.Render(base.Render(f.Source))
	}

	caret := m.caret
	if !m.caretOn() {
		caret = strings.Repeat(" ", lipgloss.Width(m.caret))
	}
	line := base.Render(f.Visible) + m.styles.caret.Render(caret)
	if pad := lipgloss.Width(f.Source) - lipgloss.Width(f.Visible) - lipgloss.Width(m.caret); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return box.Render(line)
}

// caretOn blinks the caret with a blinkMs period, visible for the first half.
func (m Model) caretOn() bool {
	if m.blinkMs <= 0 {
		return true
	}
	phase := int(m.clock.Now()) % m.blinkMs
	return phase < m.blinkMs/2
}

// typedFraction is how much of the source is currently on screen.
func typedFraction(f reveal.Frame) float64 {
	total := reveal.Length(f.Source)
	if total == 0 {
		return 0
	}
	return float64(reveal.Length(f.Visible)) / float64(total)
}

func progressBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", width-filled)
}
