// Package pages holds what the admin and instructor page builders share:
// their dependencies, the page frame and the logout entry.
package pages

import (
	"context"
	"time"

	"github.com/cristianoliveira/coursedash/internal/catalog"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/cristianoliveira/coursedash/internal/nav"
	"github.com/cristianoliveira/coursedash/internal/pages/widgets"
	"github.com/cristianoliveira/coursedash/internal/theme"
)

// LogoutID is the entry id both shells use for logging out.
const LogoutID = "logout"

const queryTimeout = 2 * time.Second

// Deps are the collaborators every page factory reads from.
type Deps struct {
	Catalog *catalog.Catalog
	Theme   theme.Theme
	Styles  theme.Styles
	Log     logging.Logger
}

// NewDeps derives the styles from t. A nil logger discards.
func NewDeps(c *catalog.Catalog, t theme.Theme, log logging.Logger) Deps {
	if log == nil {
		log = logging.Nop()
	}
	return Deps{Catalog: c, Theme: t, Styles: t.Styles(), Log: log}
}

// Load runs a catalog query with a bounded context. Failures are logged with
// the page they belong to.
func (d Deps) Load(page string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		d.Log.Warn("page data unavailable", "page", page, "error", err)
		return err
	}
	return nil
}

// LogoutEntry is the last sidebar entry of both shells.
func LogoutEntry() nav.Entry {
	return nav.Entry{ID: LogoutID, Label: "Logout", Icon: "⏻", Logout: true}
}

// View is a page: a title line, a subtitle and a body rendered into the
// space left below them.
type View struct {
	styles   theme.Styles
	title    string
	subtitle string
	body     func(width, height int) string
}

// New builds a page view.
func New(st theme.Styles, title, subtitle string, body func(width, height int) string) *View {
	return &View{styles: st, title: title, subtitle: subtitle, body: body}
}

// Failed builds a page that only reports why its data could not be loaded.
func Failed(st theme.Styles, title, what string, err error) *View {
	return New(st, title, "", func(int, int) string {
		return widgets.Failure(st, what, err)
	})
}

// Render draws the page into width x height cells.
func (v *View) Render(width, height int) string {
	head := v.styles.Title.Render(v.title)
	used := 1
	if v.subtitle != "" {
		head = widgets.Stack(head, v.styles.Muted.Render(v.subtitle))
		used++
	}
	bodyHeight := height - used - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return head + "\n\n" + v.body(width, bodyHeight)
}
