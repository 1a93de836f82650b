package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

const barGlyph = "█"

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value int
}

// Bars renders a horizontal bar chart. Bars scale against the largest value
// so the longest bar fills the space left after labels and values.
func Bars(st theme.Styles, bars []Bar, width int) string {
	if len(bars) == 0 {
		return Empty(st, "no data")
	}
	labelW, valueW, top := 0, 0, 0
	for _, b := range bars {
		labelW = max(labelW, len([]rune(b.Label)))
		valueW = max(valueW, len(fmt.Sprint(b.Value)))
		top = max(top, b.Value)
	}
	barW := width - labelW - valueW - 2
	if barW < 1 {
		barW = 1
	}

	lines := make([]string, len(bars))
	for i, b := range bars {
		n := 0
		if top > 0 {
			n = b.Value * barW / top
		}
		if b.Value > 0 && n == 0 {
			n = 1
		}
		lines[i] = fmt.Sprintf("%s %s %*d",
			Pad(b.Label, labelW),
			st.Accent.Render(Pad(strings.Repeat(barGlyph, n), barW)),
			valueW, b.Value)
	}
	return strings.Join(lines, "\n")
}

// Progress renders a completion bar for percent (0-100) followed by the
// percentage.
func Progress(percent int, width int) string {
	if width < 10 {
		width = 10
	}
	p := progress.New(progress.WithDefaultGradient(), progress.WithWidth(width))
	return p.ViewAs(clampPercent(percent))
}

func clampPercent(percent int) float64 {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 1
	}
	return float64(percent) / 100
}
