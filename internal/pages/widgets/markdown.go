package widgets

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders md for the terminal wrapped at width. Rendering failures
// fall back to the source text.
func Markdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return strings.TrimSpace(md)
	}
	out, err := r.Render(md)
	if err != nil {
		return strings.TrimSpace(md)
	}
	return strings.Trim(out, "\n")
}
