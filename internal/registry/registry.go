package registry

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Registry holds the units registered for a single emulator instance.
type Registry struct {
	mu    sync.RWMutex
	units map[string]Unit
}

// New creates and initializes an empty Registry.
func New() *Registry {
	return &Registry{
		units: make(map[string]Unit),
	}
}

// Register inserts or overwrites the unit stored under the lowercase form of name.
func (r *Registry) Register(name string, unit Unit) {
	key := strings.ToLower(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, exists := r.units[key]; exists {
		slog.Debug("Overriding function.", "name", key, "previous", prev.Name(), "unit", unit.Name())
	} else {
		slog.Debug("Registering function.", "name", key, "unit", unit.Name())
	}
	r.units[key] = unit
}

// Resolve looks up a unit by name, ignoring case. A missing name is reported
// through the boolean, not as a fault.
func (r *Registry) Resolve(name string) (Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.units[strings.ToLower(name)]
	return u, ok
}

// Names returns the sorted lowercase names of all registered units.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}
