package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusMsg asks the model to drop an expired status message.
type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
