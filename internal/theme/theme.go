// Package theme loads the terminal stylesheet shared by both shells.
package theme

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/coursedash/internal/colors"
	"github.com/cristianoliveira/coursedash/internal/errors"
	"github.com/cristianoliveira/coursedash/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

// Palette is the stylesheet as written in theme.toml. Values are lipgloss
// colors: ANSI numbers ("4") or hex ("#7c3aed").
type Palette struct {
	Accent   string `toml:"accent"`
	Text     string `toml:"text"`
	Muted    string `toml:"muted"`
	Border   string `toml:"border"`
	ActiveFG string `toml:"active_fg"`
	ActiveBG string `toml:"active_bg"`
	Success  string `toml:"success"`
	Warning  string `toml:"warning"`
	Danger   string `toml:"danger"`
}

// Layout holds size hints from theme.toml.
type Layout struct {
	SidebarWidth int `toml:"sidebar_width"`
	CardWidth    int `toml:"card_width"`
}

type file struct {
	Name   string  `toml:"name"`
	Colors Palette `toml:"colors"`
	Layout Layout  `toml:"layout"`
}

// Theme is a resolved stylesheet.
type Theme struct {
	Name    string
	Palette Palette
	Layout  Layout
	// Source is the file the theme was read from; empty for the built-in one.
	Source string
}

// Color converts a palette value to a lipgloss color. An empty value means
// the terminal default.
func Color(s string) lipgloss.TerminalColor {
	if s == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(s)
}

// Default returns the inline stylesheet used when no theme file is usable.
func Default() Theme {
	return Theme{
		Name: "default",
		Palette: Palette{
			Accent:   colors.ANSI(colors.Blue),
			Text:     "252",
			Muted:    "241",
			Border:   "238",
			ActiveFG: "0",
			ActiveBG: colors.ANSI(colors.Blue),
			Success:  colors.ANSI(colors.Green),
			Warning:  colors.ANSI(colors.Yellow),
			Danger:   colors.ANSI(colors.Red),
		},
		Layout: Layout{
			SidebarWidth: 24,
			CardWidth:    24,
		},
	}
}

// Load reads a theme file. Keys missing from the file keep their default
// values. An absent or unreadable file is a MissingResourceError.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, &errors.MissingResourceError{Resource: "stylesheet", Path: path, Err: err}
	}

	def := Default()
	f := file{Name: path, Colors: def.Palette, Layout: def.Layout}
	if err := toml.Unmarshal(data, &f); err != nil {
		return Theme{}, &errors.MissingResourceError{Resource: "stylesheet", Path: path, Err: fmt.Errorf("parse: %w", err)}
	}
	if f.Layout.SidebarWidth <= 0 {
		f.Layout.SidebarWidth = def.Layout.SidebarWidth
	}
	if f.Layout.CardWidth <= 0 {
		f.Layout.CardWidth = def.Layout.CardWidth
	}
	return Theme{Name: f.Name, Palette: f.Colors, Layout: f.Layout, Source: path}, nil
}

// Resolve loads path and falls back to Default on any failure. The failure
// is logged, never returned: a missing stylesheet must not stop a shell.
func Resolve(path string, log logging.Logger) Theme {
	if path == "" {
		return Default()
	}
	t, err := Load(path)
	if err == nil {
		log.Info("theme loaded", "path", path, "name", t.Name)
		return t
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		log.Debug("theme not found, using default", "path", path)
	} else {
		log.Warn("theme unusable, using default", "path", path, "error", err.Error())
	}
	return Default()
}
