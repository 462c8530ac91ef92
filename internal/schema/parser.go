package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseError reports a malformed document or a node of the wrong type.
// A parse error always aborts the whole parse.
type ParseError struct {
	Path   string // dotted location, e.g. "components.button.base.styles"
	Line   int
	Column int
	Msg    string
	Err    error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("schema: ")
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d:%d: ", e.Line, e.Column)
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// topKey classifies a top-level document key by name only.
type topKey int

const (
	topFlatStyle topKey = iota
	topTokens
	topComponents
)

func classifyTopKey(name string) topKey {
	switch strings.ToLower(name) {
	case "tokens":
		return topTokens
	case "components":
		return topComponents
	default:
		return topFlatStyle
	}
}

// componentKey classifies a key inside a component block by name only;
// the value's shape never decides the kind.
type componentKey int

const (
	keyPart componentKey = iota
	keyBase
	keyVariants
	keyDescription
)

func classifyComponentKey(name string) componentKey {
	switch strings.ToLower(name) {
	case "base":
		return keyBase
	case "variants":
		return keyVariants
	case "description":
		return keyDescription
	default:
		return keyPart
	}
}

// IsReservedKey reports whether name is handled specially inside a component.
func IsReservedKey(name string) bool {
	return classifyComponentKey(name) != keyPart
}

// ParseFile reads and parses a schema file.
func ParseFile(path string) (*Theme, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	theme, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", path, err)
	}
	return theme, nil
}

// Parse turns YAML text into a Theme. Top-level keys are "tokens",
// "components", or any other identifier holding a flat style. An empty
// document yields an empty theme.
func Parse(data []byte) (*Theme, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Msg: "malformed yaml", Err: err}
	}

	theme := NewTheme()

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return theme, nil
		}
		root = root.Content[0]
	}
	root = deref(root)
	if root.Kind == 0 || isNull(root) {
		return theme, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, mismatch(root, "", "mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		val := deref(root.Content[i+1])

		switch classifyTopKey(key) {
		case topTokens:
			if err := parseTokens(val, key, theme.Tokens); err != nil {
				return nil, err
			}
		case topComponents:
			if err := parseComponents(val, key, theme.Components); err != nil {
				return nil, err
			}
		case topFlatStyle:
			// Only mappings are styles; anything else is left for other tools.
			if val.Kind != yaml.MappingNode {
				continue
			}
			slot, err := parseSlot(val, key)
			if err != nil {
				return nil, err
			}
			if slot.Class == "" {
				slot.Class = key
			}
			theme.Styles[key] = slot
		}
	}

	return theme, nil
}

func parseTokens(node *yaml.Node, path string, tokens map[string]Token) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return mismatch(node, path, "mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		val := deref(node.Content[i+1])

		value := scalar(val)
		if val.Kind != yaml.ScalarNode {
			// Nested structures are kept as opaque YAML text.
			out, err := yaml.Marshal(val)
			if err != nil {
				return &ParseError{Path: path + "." + name, Line: val.Line, Column: val.Column, Msg: "serialize token", Err: err}
			}
			value = strings.TrimRight(string(out), "\n")
		}

		tokens[name] = Token{Name: name, Value: value}
	}

	return nil
}

func parseComponents(node *yaml.Node, path string, components map[string]*Component) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return mismatch(node, path, "mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		compPath := path + "." + name
		compNode := deref(node.Content[i+1])

		comp := &Component{
			Name:     name,
			Parts:    make(map[string]*Slot),
			Variants: make(map[string]*Slot),
		}

		if isNull(compNode) {
			components[name] = comp
			continue
		}
		if compNode.Kind != yaml.MappingNode {
			return mismatch(compNode, compPath, "mapping")
		}

		for j := 0; j+1 < len(compNode.Content); j += 2 {
			key := compNode.Content[j].Value
			val := deref(compNode.Content[j+1])
			keyPath := compPath + "." + key

			switch classifyComponentKey(key) {
			case keyBase:
				slot, err := parseSlot(val, keyPath)
				if err != nil {
					return err
				}
				comp.Base = slot
			case keyVariants:
				if err := parseSlotMap(val, keyPath, comp.Variants); err != nil {
					return err
				}
			case keyDescription:
				if !isNull(val) && val.Kind != yaml.ScalarNode {
					return mismatch(val, keyPath, "scalar")
				}
				comp.Description = scalar(val)
			case keyPart:
				slot, err := parseSlot(val, keyPath)
				if err != nil {
					return err
				}
				comp.Parts[key] = slot
			}
		}

		components[name] = comp
	}

	return nil
}

func parseSlotMap(node *yaml.Node, path string, into map[string]*Slot) error {
	if isNull(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return mismatch(node, path, "mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		slot, err := parseSlot(deref(node.Content[i+1]), path+"."+name)
		if err != nil {
			return err
		}
		into[name] = slot
	}

	return nil
}

// parseSlot reads the class/styles/media/states grammar shared by bases,
// parts, variants and flat styles. Unknown keys are ignored.
func parseSlot(node *yaml.Node, path string) (*Slot, error) {
	slot := &Slot{}
	if isNull(node) {
		return slot, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, mismatch(node, path, "mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := deref(node.Content[i+1])
		keyPath := path + "." + key

		var err error
		switch strings.ToLower(key) {
		case "class":
			if !isNull(val) && val.Kind != yaml.ScalarNode {
				return nil, mismatch(val, keyPath, "scalar")
			}
			slot.Class = scalar(val)
		case "styles":
			slot.Styles, err = parseStyles(val, keyPath)
		case "media":
			slot.Media, err = parseNestedMap(val, keyPath)
		case "states":
			slot.States, err = parseNestedMap(val, keyPath)
		}
		if err != nil {
			return nil, err
		}
	}

	return slot, nil
}

// parseStyles reads a sequence of single-key maps, keeping authoring order.
func parseStyles(node *yaml.Node, path string) ([]StyleProperty, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, mismatch(node, path, "sequence")
	}

	var styles []StyleProperty
	for idx, item := range node.Content {
		item = deref(item)
		if item.Kind != yaml.MappingNode {
			continue
		}
		for i := 0; i+1 < len(item.Content); i += 2 {
			prop := item.Content[i].Value
			val := deref(item.Content[i+1])
			if !isNull(val) && val.Kind != yaml.ScalarNode {
				return nil, mismatch(val, fmt.Sprintf("%s[%d].%s", path, idx, prop), "scalar")
			}
			styles = append(styles, StyleProperty{Property: prop, Value: scalar(val)})
		}
	}

	return styles, nil
}

// parseNestedMap reads selector/state -> property map blocks.
func parseNestedMap(node *yaml.Node, path string) (map[string]map[string]string, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, mismatch(node, path, "mapping")
	}

	out := make(map[string]map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		inner := deref(node.Content[i+1])
		props := make(map[string]string)

		if inner.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(inner.Content); j += 2 {
				prop := inner.Content[j].Value
				val := deref(inner.Content[j+1])
				if !isNull(val) && val.Kind != yaml.ScalarNode {
					return nil, mismatch(val, path+"."+key+"."+prop, "scalar")
				}
				props[prop] = scalar(val)
			}
		}

		out[key] = props
	}

	return out, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// scalar returns the text of a scalar node; null reads as empty.
func scalar(n *yaml.Node) string {
	if isNull(n) {
		return ""
	}
	return n.Value
}

func mismatch(n *yaml.Node, path, want string) *ParseError {
	return &ParseError{
		Path:   path,
		Line:   n.Line,
		Column: n.Column,
		Msg:    fmt.Sprintf("expected %s, found %s", want, kindName(n.Kind)),
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
