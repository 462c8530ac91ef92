package tokencss

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yacobolo/tokencss/internal/cssgen"
)

// ErrUnresolvedTokens is returned by Generate in strict mode when a style
// references a token the theme does not define.
var ErrUnresolvedTokens = errors.New("unresolved token references")

// Config holds pipeline configuration
type Config struct {
	ThemePath     string            // default theme file or directory
	Overrides     map[string]string // theme name -> override file or directory
	Variant       string            // initial variant, "default" when empty
	CacheEnabled  bool              // memoize theme loads and style lookups
	CacheDuration time.Duration     // lifetime of cached entries
	ScanPatterns  []string          // ["web/**/*.templ", "web/**/*.html"]
	OutputPath    string            // CSS destination; nothing is written when empty
	States        bool              // emit :state rules
	SchemaMedia   bool              // emit media rules declared in the schema
	Strict        bool              // fail on unresolved token references
	Logger        *zap.Logger       // nil disables logging
}

// GenerateResult contains generation output and stats
type GenerateResult struct {
	CSS        string
	Summary    cssgen.Summary
	References int // class references found by the scanner
	Warnings   []string
}

// ThemeInfo describes one registered theme
type ThemeInfo struct {
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	Tokens     int    `json:"tokens"`
	Components int    `json:"components"`
	Styles     int    `json:"styles"`
}
