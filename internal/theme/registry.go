package theme

import (
	"sort"
	"sync"

	"github.com/yacobolo/tokencss/internal/schema"
)

// DefaultName is the registry name of the unlayered theme.
const DefaultName = "default"

// Registry maps theme names to themes. Registration replaces the whole
// theme, so a single lock is enough.
type Registry struct {
	mu     sync.RWMutex
	themes map[string]*schema.Theme
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*schema.Theme)}
}

// Register stores theme under name, replacing any previous entry.
func (r *Registry) Register(name string, theme *schema.Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[name] = theme
}

// Get returns the theme registered under name.
func (r *Registry) Get(name string) (*schema.Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	return t, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered themes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.themes)
}
