package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press. ctrl+c always quits; an open logout dialog
// swallows every other key; command mode owns the keyboard until it ends.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.opts.Log.Info("shell interrupted")
		return tea.Quit
	}
	if m.prompt.Open() {
		return m.handlePromptKey(msg)
	}
	if m.commandMode {
		return m.handleCommandKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Select):
		return m.selectIndex(m.cursor)
	case key.Matches(msg, m.keys.Jump):
		return m.selectIndex(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keys.Next):
		return m.cycle(1)
	case key.Matches(msg, m.keys.Prev):
		return m.cycle(-1)
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		return m.host.Update(msg)
	case key.Matches(msg, m.keys.Command):
		return m.openCommand()
	case key.Matches(msg, m.keys.Logout):
		return m.requestLogout()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.prompts.Yes):
		m.prompt.Accept()
	case key.Matches(msg, m.prompts.No):
		m.prompt.Reject()
	case key.Matches(msg, m.prompts.Toggle):
		m.prompt.Toggle()
	case key.Matches(msg, m.prompts.Submit):
		m.prompt.Submit()
	}
	return m.afterPrompt()
}

// moveCursor moves the sidebar cursor, wrapping at both ends.
func (m *Model) moveCursor(delta int) {
	n := m.registry.Len()
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}
