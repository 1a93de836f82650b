package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/coursedash/internal/catalog"
	"github.com/cristianoliveira/coursedash/internal/colors"
	"github.com/cristianoliveira/coursedash/internal/config"
	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/cristianoliveira/coursedash/internal/nav"
	"github.com/cristianoliveira/coursedash/internal/pages"
	"github.com/cristianoliveira/coursedash/internal/pages/admin"
	"github.com/cristianoliveira/coursedash/internal/pages/instructor"
	"github.com/cristianoliveira/coursedash/internal/theme"
	"github.com/cristianoliveira/coursedash/internal/tui/state"
	"github.com/spf13/cobra"
)

// shellSpec describes one dashboard: how to pick its user and which pages
// it shows.
type shellSpec struct {
	name    string
	label   string
	short   string
	long    string
	user    func(ctx context.Context, c *catalog.Catalog, as string) (catalog.User, error)
	entries func(d pages.Deps, me catalog.User) []nav.Entry
}

type shellOptions struct {
	noTransition bool
	themePath    string
	as           string
}

const keyHelp = `
KEY BINDINGS:
    j/k, ↑/↓       Move the sidebar cursor
    Enter          Open the page under the cursor
    1-9            Open the page at that position
    Tab/Shift+Tab  Next/previous page
    PgUp/PgDn      Scroll the page
    :              Command mode (:users, :q)
    q              Log out (asks for confirmation)
    ?              Show all keys
    Ctrl+C         Quit immediately`

var adminShell = shellSpec{
	name:  "admin",
	label: "Admin",
	short: "Open the administrator dashboard",
	long:  "Open the administrator dashboard: users, courses, instructors, reports and settings.\n" + keyHelp,
	user: func(ctx context.Context, c *catalog.Catalog, as string) (catalog.User, error) {
		return pickUser(ctx, c, as, catalog.RoleAdmin)
	},
	entries: func(d pages.Deps, _ catalog.User) []nav.Entry {
		return admin.Entries(d)
	},
}

var instructorShell = shellSpec{
	name:  "instructor",
	label: "Instructor",
	short: "Open the instructor dashboard",
	long:  "Open the instructor dashboard: your courses, students, assignments, grades and announcements.\n" + keyHelp,
	user: func(ctx context.Context, c *catalog.Catalog, as string) (catalog.User, error) {
		if as == "" {
			return c.DefaultInstructor(ctx)
		}
		return pickUser(ctx, c, as, catalog.RoleInstructor)
	},
	entries: instructor.Entries,
}

func newShellCmd(def shellSpec) *cobra.Command {
	var opts shellOptions
	c := &cobra.Command{
		Use:   def.name,
		Short: def.short,
		Long:  def.long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), def, opts)
		},
	}
	c.Flags().BoolVar(&opts.noTransition, "no-transition", false, "replace pages without the reveal animation")
	c.Flags().StringVar(&opts.themePath, "theme", "", "stylesheet to use instead of theme_path")
	c.Flags().StringVar(&opts.as, "as", "", "user id to act as")
	return c
}

func runShell(ctx context.Context, def shellSpec, opts shellOptions) error {
	model, cleanup, err := buildShell(ctx, def, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	// Structured console output would corrupt the alternate screen.
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s shell: %w", def.name, err)
	}
	if model.Closed() {
		colors.Info("Logged out of", def.label)
	}
	return nil
}

// buildShell assembles the model for def without starting a program. The
// returned cleanup closes the sample catalog.
func buildShell(ctx context.Context, def shellSpec, opts shellOptions) (*state.Model, func(), error) {
	applyFlags(opts)
	log := logging.With("shell", def.name)

	cat, err := catalog.Open(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := cat.Close(); err != nil {
			log.Warn("close catalog", "error", err)
		}
	}

	user, err := def.user(ctx, cat, opts.as)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	th := theme.Resolve(config.Get("theme_path", ""), log)

	reg, err := nav.NewRegistry(def.entries(pages.NewDeps(cat, th, log), user)...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	model, err := state.New(reg, content.NewHost(transition()), state.Options{
		Shell:     def.label,
		Title:     "coursedash · " + def.label,
		User:      user.Name,
		Theme:     th,
		MinWidth:  config.GetInt("min_width", 60),
		MinHeight: config.GetInt("min_height", 16),
		StatusTTL: time.Duration(config.GetInt("status_clear_seconds", 4)) * time.Second,
		Log:       log,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	log.Info("shell ready", "user", user.ID, "theme", th.Name)
	return model, cleanup, nil
}

// applyFlags lets shell flags override the loaded configuration.
func applyFlags(opts shellOptions) {
	if opts.noTransition {
		config.Set("transition_duration_ms", "0")
	}
	if opts.themePath != "" {
		config.Set("theme_path", opts.themePath)
	}
}

func transition() content.Transition {
	d := time.Duration(config.GetInt("transition_duration_ms", 240)) * time.Millisecond
	return content.NewReveal(d, config.GetInt("transition_frames", 6))
}

// pickUser returns the user with id, or the first active user of role when
// id is empty. A user with another role is a configuration error.
func pickUser(ctx context.Context, c *catalog.Catalog, id, role string) (catalog.User, error) {
	if id == "" {
		users, err := c.Users(ctx, role)
		if err != nil {
			return catalog.User{}, err
		}
		for _, u := range users {
			if u.Status == "active" {
				return u, nil
			}
		}
		return catalog.User{}, errors.NewConfigurationError("user", role, "no active user with this role")
	}
	u, err := c.User(ctx, id)
	if err != nil {
		return catalog.User{}, errors.NewConfigurationError("as", id, err.Error())
	}
	if u.Role != role {
		return catalog.User{}, errors.NewConfigurationError("as", id, "is not a "+role)
	}
	return u, nil
}
