// Package nav holds the navigation entries of a shell and tracks which one
// is active.
package nav

import (
	"github.com/cristianoliveira/coursedash/internal/content"
	"github.com/cristianoliveira/coursedash/internal/errors"
)

// ViewFactory builds a new view every time it is called. Results are never
// cached, so revisiting an entry always starts from a clean view.
type ViewFactory func() content.View

// Entry is one selectable item of a shell sidebar.
type Entry struct {
	ID      string
	Label   string
	Icon    string
	Factory ViewFactory
	// Logout marks the entry that runs the logout flow instead of a factory.
	Logout bool
}

// Registry is the ordered, immutable list of entries of one shell.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry validates entries and freezes their order. Duplicate or empty
// ids and non-logout entries without a factory are configuration errors.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, errors.NewConfigurationError("entry id", e.Label, "must not be empty")
		}
		if _, dup := r.index[e.ID]; dup {
			return nil, errors.NewConfigurationError("entry id", e.ID, "duplicate")
		}
		if !e.Logout && e.Factory == nil {
			return nil, errors.NewConfigurationError("entry factory", e.ID, "missing view factory")
		}
		r.index[e.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// Entries returns the entries in display order. The slice is a copy.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Lookup returns the entry with the given id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	i, ok := r.index[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// At returns the entry at display position i.
func (r *Registry) At(i int) (Entry, bool) {
	if i < 0 || i >= len(r.entries) {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Index returns the display position of id, or -1.
func (r *Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// Default returns the first non-logout entry, which a shell shows on start.
func (r *Registry) Default() (Entry, bool) {
	for _, e := range r.entries {
		if !e.Logout {
			return e, true
		}
	}
	return Entry{}, false
}

// IDs returns entry ids in display order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID
	}
	return ids
}
