package content

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRevealDisabledByZeroValues(t *testing.T) {
	assert.Equal(t, NoTransition{}, NewReveal(0, 6))
	assert.Equal(t, NoTransition{}, NewReveal(time.Second, 0))
}

func TestRevealIsDoneBeforeStart(t *testing.T) {
	r := NewReveal(120*time.Millisecond, 3).(*Reveal)

	assert.True(t, r.Done())
	assert.Equal(t, "content", r.Apply("content"))
}

func TestRevealOffsetShrinksToZero(t *testing.T) {
	r := NewReveal(120*time.Millisecond, 3).(*Reveal)
	require.NotNil(t, r.Start("m"))

	assert.Equal(t, maxRevealOffset, r.Offset())
	first := r.Apply("row")
	assert.True(t, strings.HasPrefix(first, strings.Repeat(" ", maxRevealOffset)))

	var offsets []int
	for !r.Done() {
		r.Update(FrameMsg{Mount: "m"})
		offsets = append(offsets, r.Offset())
	}

	assert.Equal(t, []int{4, 2, 0}, offsets)
	assert.Equal(t, "row", r.Apply("row"))
}

func TestRevealAppliesToEveryLine(t *testing.T) {
	r := NewReveal(60*time.Millisecond, 2).(*Reveal)
	r.Start("m")

	out := r.Apply("a\nb")

	for _, line := range strings.Split(out, "\n") {
		assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", maxRevealOffset)))
	}
}

func TestRevealRestartResetsProgress(t *testing.T) {
	r := NewReveal(60*time.Millisecond, 2).(*Reveal)
	r.Start("one")
	r.Update(FrameMsg{Mount: "one"})
	r.Update(FrameMsg{Mount: "one"})
	require.True(t, r.Done())

	r.Start("two")

	assert.False(t, r.Done())
	assert.Equal(t, 0.0, r.Progress())
}

func TestNoTransitionIsInert(t *testing.T) {
	var nt NoTransition

	assert.Nil(t, nt.Start("m"))
	assert.Nil(t, nt.Update(FrameMsg{Mount: "m"}))
	assert.True(t, nt.Done())
	assert.Equal(t, "x", nt.Apply("x"))
}
