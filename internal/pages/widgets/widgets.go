// Package widgets renders the building blocks shared by the dashboard pages:
// stat cards, tables, bar charts, progress bars, read-only forms and
// markdown. Every builder returns plain rendered text sized to the region it
// is given.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

// Section renders a section heading.
func Section(st theme.Styles, title string) string {
	return st.Section.Render(title)
}

// Stack joins blocks top to bottom, skipping empty ones.
func Stack(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

// Card renders one stat card: a label, a prominent value and an optional note.
func Card(st theme.Styles, label, value, note string) string {
	lines := []string{st.Muted.Render(label), st.CardValue.Render(value)}
	if note != "" {
		lines = append(lines, st.Muted.Render(note))
	}
	return st.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// CardRow lays cards out left to right, wrapping onto a new row when the next
// card would not fit in width.
func CardRow(width int, cards ...string) string {
	if len(cards) == 0 {
		return ""
	}
	var rows []string
	var row []string
	used := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if len(row) > 0 && width > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, c)
		used += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Empty renders a muted placeholder line.
func Empty(st theme.Styles, msg string) string {
	return st.Muted.Render(msg)
}

// Failure renders a load error in place of a page.
func Failure(st theme.Styles, what string, err error) string {
	return st.Danger.Render(fmt.Sprintf("could not load %s: %v", what, err))
}

// Truncate shortens s to width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 3 {
		return string(r[:width])
	}
	for len(r) > 0 && lipgloss.Width(string(r))+3 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

// Pad right-pads s to width cells.
func Pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
