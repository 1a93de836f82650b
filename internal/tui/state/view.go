package state

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/coursedash/internal/tui/render"
)

// View renders the shell.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	if width < m.opts.MinWidth || height < m.opts.MinHeight {
		return render.TooSmall(m.styles, width, height, m.opts.MinWidth, m.opts.MinHeight)
	}

	header := m.renderHeader(width)
	footer := m.renderFooter(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	sidebar := m.renderSidebar(bodyHeight)
	contentWidth := width - lipgloss.Width(sidebar) - 2

	var body string
	if m.prompt.Open() {
		body = render.Overlay(render.Dialog(m.styles, render.DialogState{
			Question:   m.prompt.Question,
			YesFocused: m.prompt.YesFocused(),
		}), contentWidth, bodyHeight)
	} else {
		body = m.host.Render(contentWidth, bodyHeight)
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", body)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(main),
		footer,
	)
}

func (m *Model) renderSidebar(height int) string {
	entries := m.registry.Entries()
	items := make([]render.SidebarItem, len(entries))
	for i, e := range entries {
		items[i] = render.SidebarItem{
			Label:  e.Label,
			Icon:   e.Icon,
			Active: m.ctrl.IsActive(e.ID),
			Cursor: i == m.cursor,
		}
	}
	return render.Sidebar(m.styles, render.SidebarState{Title: m.opts.Shell, Items: items, Height: height})
}

func (m *Model) renderHeader(width int) string {
	page := ""
	if id, ok := m.ctrl.Active(); ok {
		if e, ok := m.registry.Lookup(id); ok {
			page = e.Label
		}
	}
	return render.Header(m.styles, render.HeaderState{Shell: m.opts.Shell, User: m.opts.User, Page: page, Width: width})
}

func (m *Model) renderFooter(width int) string {
	return render.Footer(m.styles, render.FooterState{
		CommandMode:  m.commandMode,
		CommandQuery: m.command.Value(),
		Suggestion:   m.suggestion,
		Status:       m.statusMsg,
		Help:         m.help.View(m.keys),
		Width:        width,
	})
}
