package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title        lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Accent       lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Danger       lipgloss.Style
	Sidebar      lipgloss.Style
	NavItem      lipgloss.Style
	NavCursor    lipgloss.Style
	NavActive    lipgloss.Style
	Card         lipgloss.Style
	CardValue    lipgloss.Style
	Section      lipgloss.Style
	Dialog       lipgloss.Style
	DialogButton lipgloss.Style
	DialogChoice lipgloss.Style
	StatusBar    lipgloss.Style
}

// Styles builds the style set for t.
func (t Theme) Styles() Styles {
	p := t.Palette
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(Color(p.Accent)),
		Text:    lipgloss.NewStyle().Foreground(Color(p.Text)),
		Muted:   lipgloss.NewStyle().Foreground(Color(p.Muted)),
		Accent:  lipgloss.NewStyle().Foreground(Color(p.Accent)),
		Success: lipgloss.NewStyle().Foreground(Color(p.Success)),
		Warning: lipgloss.NewStyle().Foreground(Color(p.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(Color(p.Danger)),
		Sidebar: lipgloss.NewStyle().
			Width(t.Layout.SidebarWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(Color(p.Border)),
		NavItem:   lipgloss.NewStyle().Foreground(Color(p.Text)).Padding(0, 1),
		NavCursor: lipgloss.NewStyle().Foreground(Color(p.Accent)).Bold(true).Padding(0, 1),
		NavActive: lipgloss.NewStyle().Foreground(Color(p.ActiveFG)).Background(Color(p.ActiveBG)).Bold(true).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Width(t.Layout.CardWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Color(p.Border)).
			Padding(0, 1),
		CardValue: lipgloss.NewStyle().Bold(true).Foreground(Color(p.Accent)),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(Color(p.Text)).MarginTop(1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Color(p.Danger)).
			Padding(1, 3),
		DialogButton: lipgloss.NewStyle().Foreground(Color(p.Muted)).Padding(0, 2),
		DialogChoice: lipgloss.NewStyle().Foreground(Color(p.ActiveFG)).Background(Color(p.ActiveBG)).Padding(0, 2),
		StatusBar:    lipgloss.NewStyle().Foreground(Color(p.Muted)),
	}
}
