package state

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// Suggestions further than this many edits away are not offered.
const maxSuggestionDistance = 3

func (m *Model) openCommand() tea.Cmd {
	m.commandMode = true
	m.suggestion = ""
	m.command.SetValue("")
	return m.command.Focus()
}

func (m *Model) closeCommand() {
	m.commandMode = false
	m.suggestion = ""
	m.command.Blur()
	m.command.SetValue("")
}

func (m *Model) handleCommandKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.closeCommand()
		return nil
	case tea.KeyEnter:
		query := m.command.Value()
		m.closeCommand()
		return m.executeCommand(query)
	case tea.KeyBackspace:
		if m.command.Value() == "" {
			m.closeCommand()
			return nil
		}
	}

	var cmd tea.Cmd
	m.command, cmd = m.command.Update(msg)
	m.suggestion = m.suggest(strings.TrimSpace(m.command.Value()))
	return cmd
}

// executeCommand runs a command line. Entry ids and labels select pages;
// q, quit and logout run the logout flow.
func (m *Model) executeCommand(query string) tea.Cmd {
	name := strings.ToLower(strings.TrimSpace(query))
	switch name {
	case "":
		return nil
	case "q", "quit", "logout":
		return m.requestLogout()
	case "help":
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	if id, ok := m.resolve(name); ok {
		return m.selectEntry(id)
	}
	if s := m.suggest(name); s != "" {
		return m.report(m.status.Warning, fmt.Sprintf("unknown page %q, did you mean %q?", name, s))
	}
	return m.report(m.status.Warning, fmt.Sprintf("unknown page %q", name))
}

// resolve matches name against entry ids, then labels, ignoring case.
func (m *Model) resolve(name string) (string, bool) {
	if _, ok := m.registry.Lookup(name); ok {
		return name, true
	}
	for _, e := range m.registry.Entries() {
		if strings.EqualFold(e.Label, name) {
			return e.ID, true
		}
	}
	return "", false
}

// suggest returns the entry id closest to name by edit distance, or "" when
// name already matches or nothing is close enough.
func (m *Model) suggest(name string) string {
	if name == "" {
		return ""
	}
	if _, ok := m.resolve(name); ok {
		return ""
	}
	best, bestDist := "", maxSuggestionDistance+1
	for _, id := range m.registry.IDs() {
		d := levenshtein.ComputeDistance(name, id)
		if strings.HasPrefix(id, name) {
			d = 0
		}
		if d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}
