package vbaconst

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/vk/vbaemu/internal/value"
)

// Table maps lowercase constant names to their values. It is safe for
// concurrent lookups; writes are expected only during bootstrap.
type Table struct {
	mu     sync.RWMutex
	values map[string]value.Value
}

// New creates an empty constant table.
func New() *Table {
	return &Table{values: make(map[string]value.Value)}
}

// Set inserts or overwrites the constant stored under the lowercase form of name.
func (t *Table) Set(name string, v value.Value) {
	key := strings.ToLower(name)
	t.mu.Lock()
	defer t.mu.Unlock()
	slog.Debug("Setting constant.", "name", key, "value", v.String())
	t.values[key] = v
}

// Load inserts every entry of the given list.
func (t *Table) Load(entries []Entry) {
	for _, e := range entries {
		t.Set(e.Name, e.Value)
	}
}

// Lookup returns the value of the named constant, ignoring case.
func (t *Table) Lookup(name string) (value.Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.values[strings.ToLower(name)]
	return v, ok
}

// Names returns the sorted lowercase names of all constants.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.values))
	for name := range t.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of constants in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}
