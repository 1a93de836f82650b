package content

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Host is the content region of a shell. It holds exactly one view at a time
// inside a scrollable viewport.
type Host struct {
	current    View
	mountID    string
	transition Transition
	viewport   viewport.Model
	newID      func() string
}

// NewHost returns an empty host. A nil transition disables the reveal.
func NewHost(t Transition) *Host {
	if t == nil {
		t = NoTransition{}
	}
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &Host{
		transition: t,
		viewport:   vp,
		newID:      uuid.NewString,
	}
}

// SetContent replaces the current view and starts the transition. The new
// view is current as soon as SetContent returns; the returned command only
// drives the cosmetic reveal and may be ignored.
func (h *Host) SetContent(v View) tea.Cmd {
	h.current = v
	h.mountID = h.newID()
	h.viewport.SetYOffset(0)
	return h.transition.Start(h.mountID)
}

// Current returns the view on display.
func (h *Host) Current() (View, bool) {
	return h.current, h.current != nil
}

// MountID identifies the current mount. It changes on every SetContent,
// even when the same view value is set twice.
func (h *Host) MountID() string {
	return h.mountID
}

// Transitioning reports whether the reveal of the current view is running.
func (h *Host) Transitioning() bool {
	return h.current != nil && !h.transition.Done()
}

// Update advances the transition and forwards scroll input to the viewport.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case FrameMsg:
		return h.transition.Update(msg)
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return cmd
	}
	return nil
}

// Render draws the current view into a width x height region.
func (h *Host) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	h.viewport.Width = width
	h.viewport.Height = height
	if h.current == nil {
		h.viewport.SetContent("")
		return h.viewport.View()
	}
	h.viewport.SetContent(h.transition.Apply(h.current.Render(width, height)))
	return h.viewport.View()
}

// ScrollPercent returns how far the viewport is scrolled, from 0 to 1.
func (h *Host) ScrollPercent() float64 {
	return h.viewport.ScrollPercent()
}
