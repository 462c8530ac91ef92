// Package schema holds the parsed form of a YAML style schema and the parser
// that produces it.
package schema

// Token is a named design value referenced from style values as var(--name).
type Token struct {
	Name  string
	Value string
}

// StyleProperty is one CSS declaration. Order within a list is emission order.
type StyleProperty struct {
	Property string
	Value    string
}

// Slot is one styled unit of a component: its base, a BEM part, or a variant.
// Flat (street) styles use the same shape.
type Slot struct {
	Class  string                       // "btn"; empty means unset
	Styles []StyleProperty              // declarations in authoring order
	Media  map[string]map[string]string // "@media (min-width: 640px)" -> props
	States map[string]map[string]string // "hover" -> props
}

// Component is a BEM block with an optional base, named parts and variants.
type Component struct {
	Name        string
	Description string
	Base        *Slot
	Parts       map[string]*Slot
	Variants    map[string]*Slot
}

// Theme is one parsed schema snapshot. It is never mutated after parsing;
// merging produces a new Theme.
type Theme struct {
	Tokens     map[string]Token
	Components map[string]*Component
	Styles     map[string]*Slot // flat styles keyed by top-level identifier
}

// NewTheme returns an empty theme with all collections allocated.
func NewTheme() *Theme {
	return &Theme{
		Tokens:     make(map[string]Token),
		Components: make(map[string]*Component),
		Styles:     make(map[string]*Slot),
	}
}

// Token returns the value of the named token.
func (t *Theme) Token(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	tok, ok := t.Tokens[name]
	return tok.Value, ok
}

// Empty reports whether the slot declares nothing at all.
func (s *Slot) Empty() bool {
	return s == nil || (s.Class == "" && len(s.Styles) == 0 && len(s.Media) == 0 && len(s.States) == 0)
}
