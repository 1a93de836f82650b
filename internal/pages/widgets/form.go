package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

// Field is one labelled input of a form.
type Field struct {
	Label       string
	Value       string
	Placeholder string
}

// Form renders fields as labelled, unfocused text inputs. Nothing typed into
// the dashboards is ever stored, so forms are display only.
func Form(st theme.Styles, fields []Field, width int) string {
	labelW := 0
	for _, f := range fields {
		labelW = max(labelW, lipgloss.Width(f.Label))
	}
	inputW := width - labelW - 3
	if inputW < 8 {
		inputW = 8
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.Width = inputW
		ti.SetValue(f.Value)
		ti.Blur()

		label := st.Muted.Render(strings.Repeat(" ", labelW-lipgloss.Width(f.Label)) + f.Label)
		lines = append(lines, label+" │ "+ti.View())
	}
	return strings.Join(lines, "\n")
}
