// Package resolver composes component, part and variant definitions of a
// parsed theme into concrete class lists and declarations.
package resolver

import (
	"sort"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/yacobolo/tokencss/internal/schema"
)

// StyleResult is the outcome of one lookup. The zero value means "no styling".
type StyleResult struct {
	Class        string                       // space-joined class list
	InlineStyle  string                       // "prop: value; prop2: value2"
	Declarations []schema.StyleProperty       // resolved, in emission order
	States       map[string]map[string]string // state -> props
	MediaQueries map[string]map[string]string // selector -> props
}

// Empty reports whether the result carries nothing to apply.
func (r *StyleResult) Empty() bool {
	return r == nil || (r.Class == "" && r.InlineStyle == "" && len(r.States) == 0 && len(r.MediaQueries) == 0)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache shares an existing cache. Callers own its lifetime and can
// invalidate it when the theme underneath changes.
func WithCache(c *Cache) Option {
	return func(r *Resolver) { r.cache = c }
}

// WithTTL sets the lifetime of entries in a resolver-owned cache.
func WithTTL(ttl time.Duration) Option {
	return func(r *Resolver) { r.ttl = ttl }
}

// WithoutCache disables memoization.
func WithoutCache() Option {
	return func(r *Resolver) { r.noCache = true }
}

// WithStrictTokens records token references that do not resolve.
func WithStrictTokens() Option {
	return func(r *Resolver) { r.strict = true }
}

// Resolver answers style lookups against one theme.
type Resolver struct {
	theme      *schema.Theme
	cache      *Cache
	ttl        time.Duration
	noCache    bool
	strict     bool
	unresolved *xsync.Map[string, struct{}]
	classIndex map[string]*schema.Slot
}

// New creates a resolver over theme. A nil theme resolves nothing.
func New(theme *schema.Theme, opts ...Option) *Resolver {
	if theme == nil {
		theme = schema.NewTheme()
	}

	r := &Resolver{
		theme:      theme,
		unresolved: xsync.NewMap[string, struct{}](),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.noCache {
		r.cache = nil
	} else if r.cache == nil {
		r.cache = NewCache(r.ttl)
	}

	r.classIndex = buildClassIndex(theme)
	return r
}

// Theme returns the theme being resolved.
func (r *Resolver) Theme() *schema.Theme { return r.theme }

// Cache returns the backing cache, or nil when caching is disabled.
func (r *Resolver) Cache() *Cache { return r.cache }

// Invalidate drops all cached lookups.
func (r *Resolver) Invalidate() {
	if r.cache != nil {
		r.cache.Clear()
	}
}

// Unresolved lists token names that failed to resolve, when strict mode is on.
func (r *Resolver) Unresolved() []string {
	var names []string
	r.unresolved.Range(func(name string, _ struct{}) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// GetStyles resolves path (a flat style key, or "[components.]component[.part]")
// with an optional variant. Unknown paths yield an empty result.
func (r *Resolver) GetStyles(path, variant string) *StyleResult {
	if r.cache == nil {
		return r.resolve(path, variant)
	}

	key := cacheKey{path: path, variant: variant}
	if res, ok := r.cache.get(key); ok {
		return res
	}

	res := r.resolve(path, variant)
	r.cache.put(key, res)
	return res
}

func (r *Resolver) resolve(path, variant string) *StyleResult {
	// Flat styles win over components
	if flat, ok := r.theme.Styles[path]; ok {
		c := newComposer(r)
		c.add(flat)
		return c.result()
	}

	segments := strings.Split(strings.TrimPrefix(path, "components."), ".")
	if comp, ok := r.theme.Components[segments[0]]; ok {
		c := newComposer(r)
		c.add(comp.Base)

		if len(segments) > 1 {
			if part, ok := comp.Parts[segments[1]]; ok {
				c.add(part)
			}
		}

		if variant != "" {
			if v, ok := comp.Variants[variant]; ok {
				c.add(v)
			}
		}

		return c.result()
	}

	// Markup reports class names; map them back to the slot declaring them.
	if slot, ok := r.classIndex[path]; ok {
		c := newComposer(r)
		c.add(slot)
		return c.result()
	}

	return &StyleResult{}
}

// composer accumulates slots in lookup order.
type composer struct {
	r       *Resolver
	classes []string
	decls   []schema.StyleProperty
	states  map[string]map[string]string
	media   map[string]map[string]string
}

func newComposer(r *Resolver) *composer {
	return &composer{r: r}
}

func (c *composer) add(s *schema.Slot) {
	if s == nil {
		return
	}

	if s.Class != "" {
		c.classes = append(c.classes, s.Class)
	}

	for _, p := range s.Styles {
		c.decls = append(c.decls, schema.StyleProperty{Property: p.Property, Value: c.r.substitute(p.Value)})
	}

	c.states = c.mergeInto(c.states, s.States)
	c.media = c.mergeInto(c.media, s.Media)
}

// mergeInto merges src into dst one level deep: later props overwrite same
// props, other props of an existing key survive.
func (c *composer) mergeInto(dst, src map[string]map[string]string) map[string]map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]map[string]string, len(src))
	}

	for key, props := range src {
		inner, ok := dst[key]
		if !ok {
			inner = make(map[string]string, len(props))
			dst[key] = inner
		}
		for prop, val := range c.r.substituteMap(props) {
			inner[prop] = val
		}
	}

	return dst
}

func (c *composer) result() *StyleResult {
	res := &StyleResult{
		Declarations: c.decls,
		States:       c.states,
		MediaQueries: c.media,
	}

	if len(c.classes) > 0 {
		res.Class = strings.Join(c.classes, " ")
	}

	if len(c.decls) > 0 {
		parts := make([]string, 0, len(c.decls))
		for _, d := range c.decls {
			parts = append(parts, d.Property+": "+d.Value)
		}
		res.InlineStyle = strings.Join(parts, "; ")
	}

	return res
}

// buildClassIndex maps every declared class to its slot. Flat styles are
// indexed last so they win on collisions, matching lookup precedence.
func buildClassIndex(theme *schema.Theme) map[string]*schema.Slot {
	index := make(map[string]*schema.Slot)

	addSlot := func(s *schema.Slot) {
		if s == nil || s.Class == "" || strings.ContainsAny(s.Class, " \t") {
			return
		}
		if _, exists := index[s.Class]; !exists {
			index[s.Class] = s
		}
	}

	for _, name := range sortedKeys(theme.Components) {
		comp := theme.Components[name]
		addSlot(comp.Base)
		for _, part := range sortedKeys(comp.Parts) {
			addSlot(comp.Parts[part])
		}
		for _, v := range sortedKeys(comp.Variants) {
			addSlot(comp.Variants[v])
		}
	}

	for _, name := range sortedKeys(theme.Styles) {
		s := theme.Styles[name]
		if s != nil && s.Class != "" {
			index[s.Class] = s
		}
	}

	return index
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
