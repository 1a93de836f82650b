package instructor

import (
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/cristianoliveira/coursedash/internal/catalog"
	"github.com/cristianoliveira/coursedash/internal/nav"
	"github.com/cristianoliveira/coursedash/internal/pages"
	"github.com/cristianoliveira/coursedash/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, id string) *nav.Registry {
	t.Helper()
	c, err := catalog.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	me, err := c.User(context.Background(), id)
	require.NoError(t, err)

	reg, err := nav.NewRegistry(Entries(pages.NewDeps(c, theme.Default(), nil), me)...)
	require.NoError(t, err)
	return reg
}

func render(t *testing.T, reg *nav.Registry, id string) string {
	t.Helper()
	e, ok := reg.Lookup(id)
	require.True(t, ok, id)
	return ansi.Strip(e.Factory().Render(120, 60))
}

func TestEntriesOrder(t *testing.T) {
	reg := newRegistry(t, "u-101")
	assert.Equal(t, []string{
		DashboardID, CoursesID, StudentsID, AssignmentsID, GradesID, AnnouncementsID, ProfileID, pages.LogoutID,
	}, reg.IDs())

	e, _ := reg.Lookup(CoursesID)
	assert.Equal(t, "My Courses", e.Label)
}

func TestFactoriesBuildFreshViews(t *testing.T) {
	reg := newRegistry(t, "u-101")
	for _, e := range reg.Entries() {
		if e.Logout {
			continue
		}
		assert.NotSame(t, e.Factory(), e.Factory(), e.ID)
	}
}

func TestPagesAreScopedToInstructor(t *testing.T) {
	reg := newRegistry(t, "u-101")

	cases := map[string][]string{
		DashboardID:     {"Welcome back, Dr. Helena Sato", "2026-10-24", "Mini project proposal", "Schedule", "Binary heaps"},
		CoursesID:       {"3 courses this term", "Data Structures", "Distributed Systems"},
		StudentsID:      {"8 enrollments", "Sofia Alvarez", "82%"},
		AssignmentsID:   {"Graph traversal", "0/4 submitted", "4/4 submitted"},
		GradesID:        {"Distribution", "Needs attention", "Arjun Mehta (CS220)  22%"},
		AnnouncementsID: {"Grade submission window", "Library hours extended", "Room B204"},
		ProfileID:       {"helena.sato@campus.example", "Office hours", "not set"},
	}
	for id, want := range cases {
		out := render(t, reg, id)
		for _, w := range want {
			assert.Contains(t, out, w, id)
		}
	}

	courses := render(t, reg, CoursesID)
	assert.NotContains(t, courses, "Linear Algebra")
}

func TestDashboardWithoutOpenWork(t *testing.T) {
	reg := newRegistry(t, "u-104")
	out := render(t, reg, DashboardID)
	assert.Contains(t, out, "nothing due")
	assert.Contains(t, out, "no open coursework")
}
