package cssgen

import "github.com/yacobolo/tokencss/internal/resolver"

// StyleSource resolves a style path to its declarations.
type StyleSource interface {
	GetStyles(path, variant string) *resolver.StyleResult
}

// Options controls what Generate emits beyond base and tracked media rules.
type Options struct {
	States      bool // emit .class:state rules from resolved states
	SchemaMedia bool // emit media rules declared in the schema for used classes
}

// Stats describes a generated document.
type Stats struct {
	Rules        int // class rules, nested ones included
	MediaBlocks  int
	SkippedClass int // used classes that resolved to nothing
}

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories for organizing CSS properties
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryInternal   PropertyCategory = "Internal"
)

// CategoryOrder is the display order of categories.
var CategoryOrder = []PropertyCategory{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryInternal,
}

// CategorizedProperty represents a property with its category
type CategorizedProperty struct {
	Name     string
	Value    string
	Category PropertyCategory
	IsToken  bool // value still references a token, e.g. var(--x)
}

// OutputFormat is the format of the generate summary
type OutputFormat string

const (
	// OutputText prints a human readable summary
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
)
