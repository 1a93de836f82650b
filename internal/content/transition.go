package content

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameMsg advances the transition of the mount it names. Frames addressed
// to a mount that has since been replaced are dropped.
type FrameMsg struct {
	Mount string
}

// Transition is the presentational effect played when a view is mounted.
// Nothing in the shell waits for it to finish.
type Transition interface {
	// Start resets the effect for a new mount and returns the first frame.
	Start(mount string) tea.Cmd
	// Update handles a frame and returns the next one, if any.
	Update(msg FrameMsg) tea.Cmd
	// Apply decorates rendered content for the current frame.
	Apply(rendered string) string
	// Done reports whether the effect has finished.
	Done() bool
}

// NoTransition shows new views immediately. Used in tests and when the
// duration is configured to zero.
type NoTransition struct{}

func (NoTransition) Start(string) tea.Cmd    { return nil }
func (NoTransition) Update(FrameMsg) tea.Cmd { return nil }
func (NoTransition) Apply(s string) string   { return s }
func (NoTransition) Done() bool              { return true }

// maxRevealOffset is the column offset a view starts at.
const maxRevealOffset = 6

// Reveal fades a view in while sliding it from the right into place.
type Reveal struct {
	frames   int
	interval time.Duration
	mount    string
	step     int
}

// NewReveal splits duration into frames. A zero duration or frame count
// yields NoTransition.
func NewReveal(duration time.Duration, frames int) Transition {
	if duration <= 0 || frames <= 0 {
		return NoTransition{}
	}
	return &Reveal{
		frames:   frames,
		interval: duration / time.Duration(frames),
		step:     frames,
	}
}

func (r *Reveal) Start(mount string) tea.Cmd {
	r.mount = mount
	r.step = 0
	return r.tick()
}

func (r *Reveal) Update(msg FrameMsg) tea.Cmd {
	if msg.Mount != r.mount || r.Done() {
		return nil
	}
	r.step++
	if r.Done() {
		return nil
	}
	return r.tick()
}

func (r *Reveal) tick() tea.Cmd {
	mount := r.mount
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return FrameMsg{Mount: mount}
	})
}

// Progress returns the completed fraction, from 0 to 1.
func (r *Reveal) Progress() float64 {
	return math.Min(1, float64(r.step)/float64(r.frames))
}

// Offset returns the current left offset in columns.
func (r *Reveal) Offset() int {
	return int(math.Round((1 - r.Progress()) * maxRevealOffset))
}

func (r *Reveal) Apply(s string) string {
	if r.Done() {
		return s
	}
	style := lipgloss.NewStyle().Faint(r.Progress() < 0.5)
	pad := strings.Repeat(" ", r.Offset())
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r *Reveal) Done() bool {
	return r.step >= r.frames
}
