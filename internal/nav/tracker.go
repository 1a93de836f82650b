package nav

import "github.com/cristianoliveira/coursedash/internal/errors"

// Tracker remembers the single active entry of a shell. Activate replaces
// the previous id in one assignment, so readers never observe two active
// entries or none once the first activation happened.
type Tracker struct {
	registry *Registry
	current  string
	set      bool
}

// NewTracker returns a tracker. When reg is non-nil, Activate rejects ids the
// registry does not know.
func NewTracker(reg *Registry) *Tracker {
	return &Tracker{registry: reg}
}

// Activate makes id the active entry. Unknown ids fail with a
// ConfigurationError and leave the current value untouched.
func (t *Tracker) Activate(id string) error {
	if t.registry != nil {
		if _, ok := t.registry.Lookup(id); !ok {
			return errors.NewConfigurationError("entry id", id, "not registered")
		}
	}
	t.current = id
	t.set = true
	return nil
}

// Current returns the active id, if any.
func (t *Tracker) Current() (string, bool) {
	return t.current, t.set
}

// IsActive reports whether id carries the active marker.
func (t *Tracker) IsActive(id string) bool {
	return t.set && t.current == id
}
