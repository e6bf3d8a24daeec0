package defaults

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Wildcard is the registry kind applied to every element kind.
const Wildcard = "*"

// Registry stores global default attributes per element kind.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	defaults map[string]map[string]any
	logger   zerolog.Logger
}

// NewRegistry creates an empty registry with logging disabled.
func NewRegistry() *Registry {
	return &Registry{
		defaults: make(map[string]map[string]any),
		logger:   zerolog.Nop(),
	}
}

var global = NewRegistry()

// Global returns the process-wide registry.
func Global() *Registry {
	return global
}

// SetDefaults replaces the global defaults for kind.
func SetDefaults(kind string, attrs map[string]any) {
	global.Set(kind, attrs)
}

// Defaults returns a copy of the global defaults for kind.
func Defaults(kind string) map[string]any {
	return global.Get(kind)
}

// Reset clears the process-wide registry.
func Reset() {
	global.Reset()
}

// SetLogger sets the logger used to trace attribute resolution.
func (r *Registry) SetLogger(l zerolog.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

// Logger returns the registry logger.
func (r *Registry) Logger() zerolog.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logger
}

// Set replaces the defaults for kind. A nil or empty map removes the entry.
func (r *Registry) Set(kind string, attrs map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(attrs) == 0 {
		delete(r.defaults, kind)
		return
	}
	r.defaults[kind] = copyMap(attrs)
}

// Add merges attrs into the defaults for kind, overwriting existing keys.
func (r *Registry) Add(kind string, attrs map[string]any) {
	if len(attrs) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.defaults[kind]
	if existing == nil {
		existing = make(map[string]any, len(attrs))
		r.defaults[kind] = existing
	}
	for k, v := range attrs {
		existing[k] = v
	}
}

// Get returns a copy of the defaults for kind, or nil when none are set.
func (r *Registry) Get(kind string) map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.defaults[kind]
	if !ok {
		return nil
	}
	return copyMap(m)
}

// Kinds returns the kinds that have defaults, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.defaults))
	for k := range r.defaults {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Reset removes every registered default. The logger is kept.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults = make(map[string]map[string]any)
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
