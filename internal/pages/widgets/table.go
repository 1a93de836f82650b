package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

// Cells carry one column of padding on both sides; the header takes a line
// plus its bottom border.
const (
	minColumnWidth = 4
	cellPadding    = 2
	headerHeight   = 2
)

// Column describes a table column and its preferred width.
type Column struct {
	Title string
	Width int
}

// Table renders every row below a bordered header. The widest columns shrink
// until the table fits width. Rows past the screen are reached by scrolling
// the content region, so the table itself never cuts the body.
func Table(st theme.Styles, columns []Column, rows [][]string, width int) string {
	if len(rows) == 0 {
		return Empty(st, "no records")
	}

	fitted := FitColumns(columns, width)
	cols := make([]table.Column, len(fitted))
	tableWidth := 0
	for i, c := range fitted {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
		tableWidth += c.Width + cellPadding
	}
	body := make([]table.Row, len(rows))
	for i, r := range rows {
		body[i] = table.Row(r)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(body),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(st.Muted.GetForeground()).
		BorderBottom(true).
		Bold(true)
	// Pages are read-only; no row is highlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	t.SetWidth(tableWidth)
	// The table height includes its header and the header's bottom border.
	t.SetHeight(len(rows) + headerHeight)

	return t.View()
}

// FitColumns returns a copy of columns whose total rendered width is at most
// width, shrinking the widest column one cell at a time. Columns never go
// below minColumnWidth. A non-positive width leaves the columns unchanged.
func FitColumns(columns []Column, width int) []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	if width <= 0 {
		return out
	}
	total := func() int {
		n := 0
		for _, c := range out {
			n += c.Width + cellPadding
		}
		return n
	}
	for total() > width {
		widest := -1
		for i, c := range out {
			if c.Width > minColumnWidth && (widest < 0 || c.Width > out[widest].Width) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		out[widest].Width--
	}
	return out
}
