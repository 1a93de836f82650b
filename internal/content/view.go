// Package content provides the single display slot of a shell and the
// transition played when its view is replaced.
package content

// View is an opaque displayable unit. The host only ever asks it to render
// itself into the space it is given.
type View interface {
	Render(width, height int) string
}

// ViewFunc adapts a plain render function to View.
type ViewFunc func(width, height int) string

// Render calls f.
func (f ViewFunc) Render(width, height int) string {
	return f(width, height)
}

// Static is a View that always renders the same text.
type Static string

// Render returns the text unchanged.
func (s Static) Render(int, int) string {
	return string(s)
}
