// Package shell implements the navigation controller shared by the admin
// and instructor dashboards.
package shell

import (
	stderrors "errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/cristianoliveira/coursedash/internal/nav"
)

// Phase is the coarse state of a Controller.
type Phase int

const (
	// Idle is the state between construction and Start.
	Idle Phase = iota
	// Showing means an entry is displayed.
	Showing
	// Closed is terminal; entered only through a confirmed logout.
	Closed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Showing:
		return "showing"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is the observable controller state. Entry is set only while Showing.
type State struct {
	Phase Phase
	Entry string
}

var (
	// ErrNotStarted is returned by Select before Start.
	ErrNotStarted = stderrors.New("shell not started")
	// ErrAlreadyStarted is returned by a second Start.
	ErrAlreadyStarted = stderrors.New("shell already started")
	// ErrClosed is returned once the shell has been closed.
	ErrClosed = stderrors.New("shell closed")
	// ErrPromptPending is returned while the logout prompt awaits an answer.
	ErrPromptPending = stderrors.New("logout confirmation pending")
)

// Controller wires a registry, a tracker and a content host together. All
// methods are meant to be called from a single event loop.
type Controller struct {
	registry *nav.Registry
	tracker  *nav.Tracker
	host     *content.Host
	logout   LogoutFlow
	log      logging.Logger

	state   State
	pending bool
	onClose func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for navigation events.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOnClose registers the hook run when a logout is confirmed. The
// terminal shell uses it to end the program.
func WithOnClose(fn func()) Option {
	return func(c *Controller) { c.onClose = fn }
}

// NewController builds a controller in the Idle state. A nil logout flow
// accepts every logout.
func NewController(reg *nav.Registry, tracker *nav.Tracker, host *content.Host, logout LogoutFlow, opts ...Option) *Controller {
	if logout == nil {
		logout = AlwaysConfirm
	}
	c := &Controller{
		registry: reg,
		tracker:  tracker,
		host:     host,
		logout:   logout,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start shows the first non-logout entry.
func (c *Controller) Start() (tea.Cmd, error) {
	if c.state.Phase != Idle {
		return nil, ErrAlreadyStarted
	}
	def, ok := c.registry.Default()
	if !ok {
		return nil, errors.NewConfigurationError("registry", "", "no selectable entry")
	}
	cmd, err := c.show(def)
	if err != nil {
		return nil, err
	}
	c.log.Info("shell started", "entry", def.ID)
	return cmd, nil
}

// Select switches to the entry with the given id. Selecting the active
// entry rebuilds its view. Selecting the logout entry asks the logout flow
// and leaves the state unchanged unless the answer is yes.
func (c *Controller) Select(id string) (tea.Cmd, error) {
	switch {
	case c.state.Phase == Closed:
		return nil, ErrClosed
	case c.state.Phase == Idle:
		return nil, ErrNotStarted
	case c.pending:
		return nil, ErrPromptPending
	}

	entry, ok := c.registry.Lookup(id)
	if !ok {
		return nil, errors.NewConfigurationError("entry id", id, "not registered")
	}
	if entry.Logout {
		c.requestLogout(entry.ID)
		return nil, nil
	}
	return c.show(entry)
}

func (c *Controller) show(entry nav.Entry) (tea.Cmd, error) {
	view := entry.Factory()
	if view == nil {
		return nil, errors.NewConfigurationError("entry view", entry.ID, "factory returned no view")
	}
	if err := c.tracker.Activate(entry.ID); err != nil {
		return nil, err
	}
	cmd := c.host.SetContent(view)
	c.state = State{Phase: Showing, Entry: entry.ID}
	c.log.Debug("entry shown", "entry", entry.ID, "mount", c.host.MountID())
	return cmd, nil
}

func (c *Controller) requestLogout(id string) {
	c.pending = true
	c.log.Debug("logout requested", "entry", id)
	resolved := false
	c.logout.Confirm(func(accepted bool) {
		if resolved {
			return
		}
		resolved = true
		c.pending = false
		if !accepted {
			c.log.Debug("logout cancelled", "entry", c.state.Entry)
			return
		}
		c.state = State{Phase: Closed}
		c.log.Info("shell closed")
		if c.onClose != nil {
			c.onClose()
		}
	})
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Active returns the id of the active entry.
func (c *Controller) Active() (string, bool) {
	return c.tracker.Current()
}

// IsActive reports whether id carries the active marker.
func (c *Controller) IsActive(id string) bool {
	return c.tracker.IsActive(id)
}

// Pending reports whether a logout prompt awaits an answer.
func (c *Controller) Pending() bool {
	return c.pending
}

// Registry returns the registry the controller navigates.
func (c *Controller) Registry() *nav.Registry {
	return c.registry
}

// Host returns the content host.
func (c *Controller) Host() *content.Host {
	return c.host
}
