// Package state holds the Bubble Tea model that runs one dashboard shell.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/cristianoliveira/coursedash/internal/nav"
	"github.com/cristianoliveira/coursedash/internal/shell"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

const (
	defaultWidth     = 80
	defaultHeight    = 24
	defaultMinWidth  = 60
	defaultMinHeight = 16
	defaultStatusTTL = 4 * time.Second
)

// Options configures a shell model.
type Options struct {
	// Shell names the dashboard in the header, e.g. "Admin".
	Shell string
	// Title is the terminal window title.
	Title string
	// User is shown on the right of the header.
	User string

	Theme     theme.Theme
	MinWidth  int
	MinHeight int
	StatusTTL time.Duration
	Log       logging.Logger
}

// Model is the Bubble Tea model of a dashboard shell. It owns the sidebar
// cursor, command mode and the logout dialog; navigation itself is delegated
// to a shell.Controller.
type Model struct {
	opts    Options
	styles  theme.Styles
	keys    keyMap
	prompts promptKeyMap
	help    help.Model

	registry *nav.Registry
	host     *content.Host
	ctrl     *shell.Controller
	prompt   *shell.Prompt
	logout   string

	status    *errors.TUIHandler
	statusMsg *errors.Message

	command     textinput.Model
	commandMode bool
	suggestion  string

	startCmd tea.Cmd
	cursor   int
	width    int
	height   int
	closed   bool
}

// New builds the model and starts its controller, so a registry without a
// selectable entry fails here rather than inside the program.
func New(reg *nav.Registry, host *content.Host, opts Options) (*Model, error) {
	if opts.MinWidth <= 0 {
		opts.MinWidth = defaultMinWidth
	}
	if opts.MinHeight <= 0 {
		opts.MinHeight = defaultMinHeight
	}
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = defaultStatusTTL
	}
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}
	if opts.Theme.Name == "" {
		opts.Theme = theme.Default()
	}
	if host == nil {
		host = content.NewHost(nil)
	}

	cmd := textinput.New()
	cmd.Prompt = ""
	cmd.CharLimit = 64

	m := &Model{
		opts:     opts,
		styles:   opts.Theme.Styles(),
		keys:     defaultKeyMap(),
		prompts:  defaultPromptKeyMap(),
		help:     help.New(),
		registry: reg,
		host:     host,
		prompt:   shell.NewPrompt("Log out of " + opts.Shell + "?"),
		command:  cmd,
	}
	for _, e := range reg.Entries() {
		if e.Logout {
			m.logout = e.ID
			break
		}
	}

	m.status = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMsg = &msg
	})
	m.ctrl = shell.NewController(reg, nav.NewTracker(reg), host, m.prompt,
		shell.WithLogger(opts.Log.With("shell", opts.Shell)),
		shell.WithOnClose(func() { m.closed = true }),
	)

	start, err := m.ctrl.Start()
	if err != nil {
		return nil, err
	}
	m.startCmd = start
	m.syncCursor()
	return m, nil
}

// Init sets the window title and starts the first transition.
func (m *Model) Init() tea.Cmd {
	title := m.opts.Title
	if title == "" {
		title = m.opts.Shell
	}
	return tea.Batch(tea.SetWindowTitle(title), m.startCmd)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case content.FrameMsg:
		return m, m.host.Update(msg)
	case clearStatusMsg:
		if m.status.Expired(m.opts.StatusTTL) {
			m.statusMsg = nil
		}
		return m, nil
	case tea.MouseMsg:
		if m.prompt.Open() {
			return m, nil
		}
		return m, m.host.Update(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// Controller exposes the navigation controller.
func (m *Model) Controller() *shell.Controller {
	return m.ctrl
}

// Closed reports whether the user confirmed logging out.
func (m *Model) Closed() bool {
	return m.closed
}

// Cursor returns the sidebar cursor position.
func (m *Model) Cursor() int {
	return m.cursor
}

// CommandMode reports whether the command line is open.
func (m *Model) CommandMode() bool {
	return m.commandMode
}

// Status returns the status message on display, if any.
func (m *Model) Status() (errors.Message, bool) {
	if m.statusMsg == nil {
		return errors.Message{}, false
	}
	return *m.statusMsg, true
}

// selectEntry asks the controller to show id and keeps the cursor on the
// active entry. Failures go to the status line.
func (m *Model) selectEntry(id string) tea.Cmd {
	cmd, err := m.ctrl.Select(id)
	if err != nil {
		m.opts.Log.Debug("select failed", "entry", id, "error", err)
		return m.report(m.status.Warning, err.Error())
	}
	m.syncCursor()
	return cmd
}

func (m *Model) selectIndex(i int) tea.Cmd {
	e, ok := m.registry.At(i)
	if !ok {
		return nil
	}
	m.cursor = i
	return m.selectEntry(e.ID)
}

// cycle selects the next (delta 1) or previous (delta -1) page, skipping the
// logout entry.
func (m *Model) cycle(delta int) tea.Cmd {
	n := m.registry.Len()
	if n == 0 {
		return nil
	}
	start := m.cursor
	if id, ok := m.ctrl.Active(); ok {
		start = m.registry.Index(id)
	}
	for step := 1; step <= n; step++ {
		i := ((start+delta*step)%n + n) % n
		if e, _ := m.registry.At(i); !e.Logout {
			return m.selectIndex(i)
		}
	}
	return nil
}

func (m *Model) syncCursor() {
	if id, ok := m.ctrl.Active(); ok {
		if i := m.registry.Index(id); i >= 0 {
			m.cursor = i
		}
	}
}

func (m *Model) requestLogout() tea.Cmd {
	if m.logout == "" {
		return m.report(m.status.Warning, "this shell has no logout entry")
	}
	return m.selectEntry(m.logout)
}

// report shows a status message and schedules its removal.
func (m *Model) report(emit func(string), text string) tea.Cmd {
	emit(text)
	return clearStatusAfter(m.opts.StatusTTL)
}

// afterPrompt ends the program once a logout has been confirmed.
func (m *Model) afterPrompt() tea.Cmd {
	if m.closed {
		return tea.Quit
	}
	return nil
}
