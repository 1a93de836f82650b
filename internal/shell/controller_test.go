package shell

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/cristianoliveira/coursedash/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// countedView records which factory call produced it.
type countedView struct {
	page     string
	instance int
}

func (v *countedView) Render(int, int) string {
	return fmt.Sprintf("%s#%d", v.page, v.instance)
}

type factoryCounter struct {
	calls map[string]int
}

func (f *factoryCounter) factory(page string) nav.ViewFactory {
	return func() content.View {
		f.calls[page]++
		return &countedView{page: page, instance: f.calls[page]}
	}
}

// mockLogout is a LogoutFlow whose answer is scripted per test.
type mockLogout struct {
	mock.Mock
}

func (m *mockLogout) Confirm(resolve func(bool)) {
	args := m.Called(resolve)
	if answer, ok := args.Get(0).(bool); ok {
		resolve(answer)
	}
}

type fixture struct {
	counter    *factoryCounter
	registry   *nav.Registry
	host       *content.Host
	controller *Controller
	closed     int
}

func newFixture(t *testing.T, logout LogoutFlow) *fixture {
	t.Helper()
	f := &fixture{counter: &factoryCounter{calls: map[string]int{}}}
	reg, err := nav.NewRegistry(
		nav.Entry{ID: "dashboard", Label: "Dashboard", Factory: f.counter.factory("Dashboard")},
		nav.Entry{ID: "users", Label: "Users", Factory: f.counter.factory("Users")},
		nav.Entry{ID: "courses", Label: "Courses", Factory: f.counter.factory("Courses")},
		nav.Entry{ID: "logout", Label: "Logout", Logout: true},
	)
	require.NoError(t, err)
	f.registry = reg
	f.host = content.NewHost(nil)
	f.controller = NewController(reg, nav.NewTracker(reg), f.host, logout,
		WithOnClose(func() { f.closed++ }))
	return f
}

func (f *fixture) current(t *testing.T) *countedView {
	t.Helper()
	v, ok := f.host.Current()
	require.True(t, ok)
	cv, ok := v.(*countedView)
	require.True(t, ok)
	return cv
}

func TestControllerStartsIdle(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, State{Phase: Idle}, f.controller.State())
	_, ok := f.controller.Active()
	assert.False(t, ok)
	_, ok = f.host.Current()
	assert.False(t, ok)
}

func TestStartShowsFirstNonLogoutEntry(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.controller.Start()

	require.NoError(t, err)
	assert.Equal(t, State{Phase: Showing, Entry: "dashboard"}, f.controller.State())
	active, ok := f.controller.Active()
	require.True(t, ok)
	assert.Equal(t, "dashboard", active)
	assert.Equal(t, &countedView{page: "Dashboard", instance: 1}, f.current(t))
}

func TestStartTwiceFails(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.controller.Start()
	require.NoError(t, err)

	_, err = f.controller.Start()

	assert.ErrorIs(t, err, ErrAlreadyStarted)
	assert.Equal(t, 1, f.counter.calls["Dashboard"])
}

func TestStartWithoutSelectableEntry(t *testing.T) {
	reg, err := nav.NewRegistry(nav.Entry{ID: "logout", Label: "Logout", Logout: true})
	require.NoError(t, err)
	c := NewController(reg, nav.NewTracker(reg), content.NewHost(nil), nil)

	_, err = c.Start()

	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, Idle, c.State().Phase)
}

func TestNilViewIsConfigurationError(t *testing.T) {
	reg, err := nav.NewRegistry(
		nav.Entry{ID: "blank", Label: "Blank", Factory: func() content.View { return nil }},
		nav.Entry{ID: "users", Label: "Users", Factory: func() content.View { return content.ViewFunc(func(int, int) string { return "users" }) }},
	)
	require.NoError(t, err)
	host := content.NewHost(nil)
	c := NewController(reg, nav.NewTracker(reg), host, nil)

	_, err = c.Start()

	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, Idle, c.State().Phase)
	_, ok := host.Current()
	assert.False(t, ok)
	_, ok = c.Active()
	assert.False(t, ok)
}

func TestSelectNilViewKeepsShowing(t *testing.T) {
	reg, err := nav.NewRegistry(
		nav.Entry{ID: "users", Label: "Users", Factory: func() content.View { return content.ViewFunc(func(int, int) string { return "users" }) }},
		nav.Entry{ID: "blank", Label: "Blank", Factory: func() content.View { return nil }},
	)
	require.NoError(t, err)
	host := content.NewHost(nil)
	c := NewController(reg, nav.NewTracker(reg), host, nil)
	_, err = c.Start()
	require.NoError(t, err)
	mount := host.MountID()

	_, err = c.Select("blank")

	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, State{Phase: Showing, Entry: "users"}, c.State())
	assert.Equal(t, mount, host.MountID())
	active, _ := c.Active()
	assert.Equal(t, "users", active)
}

func TestSelectBeforeStart(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.controller.Select("users")

	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Zero(t, f.counter.calls["Users"])
}

func TestSelectUnknownEntry(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.controller.Start()
	require.NoError(t, err)

	_, err = f.controller.Select("ghost")

	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, State{Phase: Showing, Entry: "dashboard"}, f.controller.State())
}

func TestSelectTracksMostRecentEntry(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.controller.Start()
	require.NoError(t, err)

	for _, id := range []string{"users", "courses", "dashboard", "courses", "users"} {
		_, err := f.controller.Select(id)
		require.NoError(t, err)

		active, _ := f.controller.Active()
		assert.Equal(t, id, active)
		marked := 0
		for _, e := range f.registry.Entries() {
			if f.controller.IsActive(e.ID) {
				marked++
			}
		}
		assert.Equal(t, 1, marked)
	}
}

func TestReselectingActiveEntryRebuildsView(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.controller.Start()
	require.NoError(t, err)

	_, err = f.controller.Select("users")
	require.NoError(t, err)
	first := f.current(t)
	firstMount := f.host.MountID()

	_, err = f.controller.Select("users")
	require.NoError(t, err)
	second := f.current(t)

	assert.Equal(t, 2, f.counter.calls["Users"])
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.instance)
	assert.NotEqual(t, firstMount, f.host.MountID())
}

func TestLogoutDeclinedKeepsState(t *testing.T) {
	flow := &mockLogout{}
	flow.On("Confirm", mock.Anything).Return(false).Once()
	f := newFixture(t, flow)
	_, err := f.controller.Start()
	require.NoError(t, err)
	_, err = f.controller.Select("users")
	require.NoError(t, err)

	cmd, err := f.controller.Select("logout")

	require.NoError(t, err)
	assert.Nil(t, cmd)
	assert.Equal(t, State{Phase: Showing, Entry: "users"}, f.controller.State())
	active, _ := f.controller.Active()
	assert.Equal(t, "users", active)
	assert.False(t, f.controller.Pending())
	assert.Zero(t, f.closed)
	assert.Equal(t, 1, f.counter.calls["Users"], "declining does not rebuild the view")
	flow.AssertExpectations(t)
}

func TestLogoutAcceptedClosesShell(t *testing.T) {
	flow := &mockLogout{}
	flow.On("Confirm", mock.Anything).Return(true).Once()
	f := newFixture(t, flow)
	_, err := f.controller.Start()
	require.NoError(t, err)

	_, err = f.controller.Select("logout")
	require.NoError(t, err)

	assert.Equal(t, State{Phase: Closed}, f.controller.State())
	assert.Equal(t, 1, f.closed)

	_, err = f.controller.Select("users")
	assert.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, f.counter.calls["Users"])
	_, err = f.controller.Select("logout")
	assert.ErrorIs(t, err, ErrClosed)
	flow.AssertExpectations(t)
}

func TestPendingPromptSuspendsSelection(t *testing.T) {
	var resolve func(bool)
	flow := &mockLogout{}
	flow.On("Confirm", mock.Anything).Run(func(args mock.Arguments) {
		resolve = args.Get(0).(func(bool))
	}).Return(nil).Once()
	f := newFixture(t, flow)
	_, err := f.controller.Start()
	require.NoError(t, err)

	_, err = f.controller.Select("logout")
	require.NoError(t, err)
	require.NotNil(t, resolve)
	assert.True(t, f.controller.Pending())

	_, err = f.controller.Select("users")
	assert.ErrorIs(t, err, ErrPromptPending)
	assert.Zero(t, f.counter.calls["Users"])

	resolve(false)
	assert.False(t, f.controller.Pending())
	resolve(true)
	assert.Equal(t, Showing, f.controller.State().Phase, "second resolution is ignored")

	_, err = f.controller.Select("users")
	assert.NoError(t, err)
	flow.AssertExpectations(t)
}

func TestNilLogoutFlowAccepts(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.controller.Start()
	require.NoError(t, err)

	_, err = f.controller.Select("logout")

	require.NoError(t, err)
	assert.Equal(t, Closed, f.controller.State().Phase)
}

func TestWalkthroughScenario(t *testing.T) {
	answers := []bool{false, true}
	asked := 0
	f := newFixture(t, ConfirmFunc(func() bool {
		a := answers[asked]
		asked++
		return a
	}))

	_, err := f.controller.Start()
	require.NoError(t, err)
	assert.Equal(t, "Dashboard#1", f.current(t).Render(0, 0))

	_, err = f.controller.Select("users")
	require.NoError(t, err)
	assert.Equal(t, "Users#1", f.current(t).Render(0, 0))

	_, err = f.controller.Select("users")
	require.NoError(t, err)
	assert.Equal(t, "Users#2", f.current(t).Render(0, 0))

	_, err = f.controller.Select("logout")
	require.NoError(t, err)
	active, _ := f.controller.Active()
	assert.Equal(t, "users", active)
	assert.Equal(t, State{Phase: Showing, Entry: "users"}, f.controller.State())

	_, err = f.controller.Select("logout")
	require.NoError(t, err)
	assert.Equal(t, Closed, f.controller.State().Phase)
	assert.Equal(t, 2, asked)
}

func TestControllerLogsNavigation(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.Config{Level: "debug"})
	f := newFixture(t, nil)
	f.controller = NewController(f.registry, nav.NewTracker(f.registry), f.host, AlwaysConfirm, WithLogger(log))

	_, err := f.controller.Start()
	require.NoError(t, err)
	_, err = f.controller.Select("courses")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "shell started")
	assert.Contains(t, buf.String(), `"entry":"courses"`)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "showing", Showing.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
