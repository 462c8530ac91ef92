// Package theme layers, registers and switches parsed themes.
package theme

import (
	"github.com/yacobolo/tokencss/internal/schema"
)

// Merge layers override on top of base and returns a new theme. Neither input
// is modified. A nil side yields the other side; both nil yields nil.
//
// Structures present on only one side are shared with the result rather than
// copied, so parsed themes must be treated as immutable.
func Merge(base, override *schema.Theme) *schema.Theme {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	out := schema.NewTheme()

	for name, tok := range base.Tokens {
		out.Tokens[name] = tok
	}
	for name, tok := range override.Tokens {
		out.Tokens[name] = tok
	}

	for name, comp := range base.Components {
		out.Components[name] = comp
	}
	for name, comp := range override.Components {
		out.Components[name] = mergeComponent(out.Components[name], comp)
	}

	for name, s := range base.Styles {
		out.Styles[name] = s
	}
	for name, s := range override.Styles {
		out.Styles[name] = mergeSlot(out.Styles[name], s)
	}

	return out
}

// MergeAll folds layers left to right. Nil layers are skipped.
func MergeAll(layers ...*schema.Theme) *schema.Theme {
	var out *schema.Theme
	for _, layer := range layers {
		out = Merge(out, layer)
	}
	return out
}

func mergeComponent(base, override *schema.Component) *schema.Component {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	out := &schema.Component{
		Name:        base.Name,
		Description: base.Description,
		Base:        mergeSlot(base.Base, override.Base),
		Parts:       mergeSlots(base.Parts, override.Parts),
		Variants:    mergeSlots(base.Variants, override.Variants),
	}
	if override.Description != "" {
		out.Description = override.Description
	}
	if out.Name == "" {
		out.Name = override.Name
	}
	return out
}

func mergeSlots(base, override map[string]*schema.Slot) map[string]*schema.Slot {
	out := make(map[string]*schema.Slot, len(base)+len(override))
	for name, s := range base {
		out[name] = s
	}
	for name, s := range override {
		out[name] = mergeSlot(out[name], s)
	}
	return out
}

// mergeSlot replaces the class when the override names one. Styles, media and
// states merge property by property with the override winning.
func mergeSlot(base, override *schema.Slot) *schema.Slot {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	out := &schema.Slot{
		Class:  base.Class,
		Styles: mergeStyles(base.Styles, override.Styles),
		Media:  mergeBlocks(base.Media, override.Media),
		States: mergeBlocks(base.States, override.States),
	}
	if override.Class != "" {
		out.Class = override.Class
	}
	return out
}

// mergeStyles keeps the position of the first occurrence of each property:
// base order first, then properties only the override declares.
func mergeStyles(base, override []schema.StyleProperty) []schema.StyleProperty {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}

	values := make(map[string]string, len(base)+len(override))
	var order []string

	for _, layer := range [][]schema.StyleProperty{base, override} {
		for _, p := range layer {
			if _, seen := values[p.Property]; !seen {
				order = append(order, p.Property)
			}
			values[p.Property] = p.Value
		}
	}

	out := make([]schema.StyleProperty, 0, len(order))
	for _, prop := range order {
		out = append(out, schema.StyleProperty{Property: prop, Value: values[prop]})
	}
	return out
}

func mergeBlocks(base, override map[string]map[string]string) map[string]map[string]string {
	if base == nil && override == nil {
		return nil
	}

	out := make(map[string]map[string]string, len(base)+len(override))
	for _, layer := range []map[string]map[string]string{base, override} {
		for key, props := range layer {
			inner, ok := out[key]
			if !ok {
				inner = make(map[string]string, len(props))
				out[key] = inner
			}
			for prop, val := range props {
				inner[prop] = val
			}
		}
	}
	return out
}
