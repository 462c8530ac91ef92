package theme

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yacobolo/tokencss/internal/schema"
)

// ErrNotRegistered is returned when switching to an unknown theme.
var ErrNotRegistered = errors.New("theme not registered")

// ChangeFunc is called after the active variant changed.
type ChangeFunc func(variant string, theme *schema.Theme)

// Context tracks the active theme variant of a registry.
type Context struct {
	registry *Registry

	// notifyMu serializes switches so listeners see them in the order
	// they were applied.
	notifyMu sync.Mutex

	mu        sync.Mutex
	variant   string
	theme     *schema.Theme
	listeners map[int]ChangeFunc
	nextID    int
}

// NewContext creates a context over registry with no active variant.
func NewContext(registry *Registry) *Context {
	return &Context{
		registry:  registry,
		listeners: make(map[int]ChangeFunc),
	}
}

// Variant returns the active variant name.
func (c *Context) Variant() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.variant
}

// Theme returns the active theme, or nil before the first SetVariant.
func (c *Context) Theme() *schema.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// SetVariant activates a registered theme and notifies listeners. Switching
// to the already active variant is a no-op. Listeners must not call
// SetVariant themselves.
func (c *Context) SetVariant(name string) error {
	t, ok := c.registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotRegistered, name)
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if c.variant == name && c.theme == t {
		c.mu.Unlock()
		return nil
	}
	c.variant = name
	c.theme = t
	listeners := make([]ChangeFunc, 0, len(c.listeners))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(name, t)
	}
	return nil
}

// OnChange registers fn and returns a func that removes it.
func (c *Context) OnChange(fn ChangeFunc) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}
