package nav

import (
	"testing"

	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFactory(text string) ViewFactory {
	return func() content.View { return content.Static(text) }
}

func sampleEntries() []Entry {
	return []Entry{
		{ID: "dashboard", Label: "Dashboard", Icon: "■", Factory: staticFactory("dashboard")},
		{ID: "users", Label: "Users", Icon: "●", Factory: staticFactory("users")},
		{ID: "courses", Label: "Courses", Icon: "◆", Factory: staticFactory("courses")},
		{ID: "logout", Label: "Logout", Icon: "⏻", Logout: true},
	}
}

func TestNewRegistryKeepsDisplayOrder(t *testing.T) {
	reg, err := NewRegistry(sampleEntries()...)

	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "users", "courses", "logout"}, reg.IDs())
	assert.Equal(t, 4, reg.Len())
	assert.Equal(t, 2, reg.Index("courses"))
	assert.Equal(t, -1, reg.Index("nope"))
}

func TestNewRegistryRejectsDuplicateIDs(t *testing.T) {
	entries := append(sampleEntries(), Entry{ID: "users", Label: "Users again", Factory: staticFactory("x")})

	reg, err := NewRegistry(entries...)

	require.Error(t, err)
	assert.Nil(t, reg)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "users")
}

func TestNewRegistryRejectsEmptyIDAndMissingFactory(t *testing.T) {
	_, err := NewRegistry(Entry{Label: "Nameless", Factory: staticFactory("x")})
	assert.True(t, errors.IsConfiguration(err))

	_, err = NewRegistry(Entry{ID: "reports", Label: "Reports"})
	assert.True(t, errors.IsConfiguration(err))

	_, err = NewRegistry(Entry{ID: "logout", Label: "Logout", Logout: true})
	assert.NoError(t, err, "logout entries need no factory")
}

func TestEntriesReturnsCopy(t *testing.T) {
	reg, err := NewRegistry(sampleEntries()...)
	require.NoError(t, err)

	entries := reg.Entries()
	entries[0].Label = "Changed"

	first, ok := reg.At(0)
	require.True(t, ok)
	assert.Equal(t, "Dashboard", first.Label)
}

func TestLookupAndAt(t *testing.T) {
	reg, err := NewRegistry(sampleEntries()...)
	require.NoError(t, err)

	e, ok := reg.Lookup("logout")
	require.True(t, ok)
	assert.True(t, e.Logout)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	_, ok = reg.At(-1)
	assert.False(t, ok)
	_, ok = reg.At(4)
	assert.False(t, ok)
}

func TestDefaultSkipsLogoutEntries(t *testing.T) {
	reg, err := NewRegistry(
		Entry{ID: "logout", Label: "Logout", Logout: true},
		Entry{ID: "profile", Label: "Profile", Factory: staticFactory("p")},
	)
	require.NoError(t, err)

	def, ok := reg.Default()

	require.True(t, ok)
	assert.Equal(t, "profile", def.ID)
}

func TestDefaultMissingWhenOnlyLogout(t *testing.T) {
	reg, err := NewRegistry(Entry{ID: "logout", Label: "Logout", Logout: true})
	require.NoError(t, err)

	_, ok := reg.Default()

	assert.False(t, ok)
}

func TestTrackerHandOff(t *testing.T) {
	reg, err := NewRegistry(sampleEntries()...)
	require.NoError(t, err)
	tr := NewTracker(reg)

	_, ok := tr.Current()
	assert.False(t, ok)
	for _, id := range reg.IDs() {
		assert.False(t, tr.IsActive(id))
	}

	for _, id := range []string{"dashboard", "users", "users", "courses"} {
		require.NoError(t, tr.Activate(id))
		cur, ok := tr.Current()
		require.True(t, ok)
		assert.Equal(t, id, cur)

		active := 0
		for _, other := range reg.IDs() {
			if tr.IsActive(other) {
				active++
			}
		}
		assert.Equal(t, 1, active, "exactly one entry is active after %s", id)
	}
}

func TestTrackerRejectsUnknownIDs(t *testing.T) {
	reg, err := NewRegistry(sampleEntries()...)
	require.NoError(t, err)
	tr := NewTracker(reg)
	require.NoError(t, tr.Activate("users"))

	err = tr.Activate("ghost")

	assert.True(t, errors.IsConfiguration(err))
	cur, _ := tr.Current()
	assert.Equal(t, "users", cur)
}

func TestTrackerWithoutRegistryAcceptsAnything(t *testing.T) {
	tr := NewTracker(nil)

	require.NoError(t, tr.Activate("anything"))

	assert.True(t, tr.IsActive("anything"))
}
