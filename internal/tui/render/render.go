// Package render draws the frame around a shell's content: sidebar, header,
// footer, the logout dialog and the size notice.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

const (
	activeMarker = "▌"
	cursorMarker = "›"
)

// SidebarItem defines the inputs needed to render one navigation entry.
type SidebarItem struct {
	Label  string
	Icon   string
	Active bool
	Cursor bool
}

// SidebarState defines the inputs needed to render the sidebar.
type SidebarState struct {
	Title  string
	Items  []SidebarItem
	Height int
}

// HeaderState defines the inputs needed to render the header line.
type HeaderState struct {
	Shell string
	User  string
	Page  string
	Width int
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	CommandMode  bool
	CommandQuery string
	Suggestion   string
	Status       *errors.Message
	Help         string
	Width        int
}

// DialogState defines the inputs needed to render the logout dialog.
type DialogState struct {
	Question   string
	YesFocused bool
}

// Sidebar renders the navigation list. Items are numbered for the digit
// shortcuts; the active entry carries the marker and the cursor entry is
// highlighted.
func Sidebar(st theme.Styles, s SidebarState) string {
	lines := []string{st.Title.Padding(0, 1).Render(s.Title), ""}
	inner := st.Sidebar.GetWidth() - st.Sidebar.GetHorizontalPadding()
	for i, item := range s.Items {
		lines = append(lines, SidebarLine(st, i, item, inner))
	}
	return st.Sidebar.Height(max(s.Height, 1)).Render(strings.Join(lines, "\n"))
}

// SidebarLine renders one entry, padded to width cells.
func SidebarLine(st theme.Styles, index int, item SidebarItem, width int) string {
	marker := " "
	if item.Active {
		marker = activeMarker
	}
	pointer := " "
	if item.Cursor {
		pointer = cursorMarker
	}
	number := " "
	if index < 9 {
		number = fmt.Sprint(index + 1)
	}
	text := fmt.Sprintf("%s%s %s %s %s", marker, pointer, number, item.Icon, item.Label)

	style := st.NavItem
	switch {
	case item.Active:
		style = st.NavActive
	case item.Cursor:
		style = st.NavCursor
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(truncate(text, width-style.GetHorizontalPadding()))
}

// Header renders the shell name, the user and the current page.
func Header(st theme.Styles, s HeaderState) string {
	left := st.Title.Render(s.Shell)
	if s.Page != "" {
		left += st.Muted.Render(" / ") + st.Text.Render(s.Page)
	}
	right := st.Muted.Render(s.User)
	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// Footer renders the command line when command mode is on, otherwise the
// latest status message or the key help.
func Footer(st theme.Styles, s FooterState) string {
	var line string
	switch {
	case s.CommandMode:
		line = st.Accent.Render(":") + st.Text.Render(s.CommandQuery)
		if s.Suggestion != "" {
			line += st.Muted.Render("  did you mean :" + s.Suggestion + "?")
		}
	case s.Status != nil && s.Status.Text != "":
		line = StatusLine(st, *s.Status)
	default:
		line = st.StatusBar.Render(s.Help)
	}
	if s.Width > 0 {
		line = truncate(line, s.Width)
	}
	return line
}

// StatusLine renders a status message prefixed with its type.
func StatusLine(st theme.Styles, msg errors.Message) string {
	style := st.Text
	switch msg.Type {
	case errors.MessageTypeError:
		style = st.Danger
	case errors.MessageTypeWarning:
		style = st.Warning
	case errors.MessageTypeSuccess:
		style = st.Success
	}
	return style.Render(msg.Type.String() + ": " + msg.Text)
}

// Dialog renders the yes/no box.
func Dialog(st theme.Styles, s DialogState) string {
	yes, no := st.DialogButton, st.DialogChoice
	if s.YesFocused {
		yes, no = st.DialogChoice, st.DialogButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes.Render("Yes"), "  ", no.Render("No"))
	hint := st.Muted.Render("y/n · tab to switch · enter to choose")
	body := lipgloss.JoinVertical(lipgloss.Center, st.Text.Bold(true).Render(s.Question), "", buttons, "", hint)
	return st.Dialog.Render(body)
}

// Overlay centers box in a width x height area.
func Overlay(box string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// TooSmall renders the notice shown while the terminal is below the minimum
// size.
func TooSmall(st theme.Styles, width, height, minWidth, minHeight int) string {
	msg := st.Warning.Render("terminal too small") + "\n" +
		st.Muted.Render(fmt.Sprintf("%dx%d, need at least %dx%d", width, height, minWidth, minHeight))
	if width <= 0 || height <= 0 {
		return msg
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// truncate cuts s to width cells, keeping ANSI sequences intact.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
