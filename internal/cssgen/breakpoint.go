package cssgen

import (
	"sort"
	"strings"
)

// Breakpoint is a named viewport width threshold.
type Breakpoint struct {
	Name  string
	Width string
}

// Standard breakpoints, ascending.
var (
	SM  = Breakpoint{Name: "sm", Width: "640px"}
	MD  = Breakpoint{Name: "md", Width: "768px"}
	LG  = Breakpoint{Name: "lg", Width: "1024px"}
	XL  = Breakpoint{Name: "xl", Width: "1280px"}
	XXL = Breakpoint{Name: "2xl", Width: "1536px"}
)

// Breakpoints lists the standard breakpoints in ascending order.
var Breakpoints = []Breakpoint{SM, MD, LG, XL, XXL}

// unknownOrder sorts selectors without a known breakpoint last.
const unknownOrder = 99

// Selectors for non-width media features.
const (
	DarkMode      = "@media (prefers-color-scheme: dark)"
	ReducedMotion = "@media (prefers-reduced-motion: reduce)"
)

// MinWidth targets viewports at least as wide as bp.
func MinWidth(bp Breakpoint) string {
	return "@media (min-width: " + bp.Width + ")"
}

// MaxWidth targets viewports at most as wide as bp.
func MaxWidth(bp Breakpoint) string {
	return "@media (max-width: " + bp.Width + ")"
}

// Between targets viewports from min up to max.
func Between(min, max Breakpoint) string {
	return "@media (min-width: " + min.Width + ") and (max-width: " + max.Width + ")"
}

// Mobile, Tablet and Desktop are the common device ranges.
func Mobile() string  { return MaxWidth(MD) }
func Tablet() string  { return Between(MD, LG) }
func Desktop() string { return MinWidth(LG) }

// prefixSelectors maps markup prefixes such as "md:" to media selectors.
var prefixSelectors = map[string]string{
	"sm":            MinWidth(SM),
	"md":            MinWidth(MD),
	"lg":            MinWidth(LG),
	"xl":            MinWidth(XL),
	"2xl":           MinWidth(XXL),
	"mobile":        Mobile(),
	"tablet":        Tablet(),
	"desktop":       Desktop(),
	"dark":          DarkMode,
	"motion-reduce": ReducedMotion,
}

// PrefixSelector splits a responsive class token like "md:card" into its
// media selector and bare class. ok is false for tokens without a known prefix.
func PrefixSelector(token string) (selector, class string, ok bool) {
	prefix, rest, found := strings.Cut(token, ":")
	if !found || rest == "" {
		return "", token, false
	}
	selector, ok = prefixSelectors[prefix]
	if !ok {
		return "", token, false
	}
	return selector, rest, true
}

// BreakpointOrder ranks a media selector by the first standard width it
// mentions, smallest first. Selectors naming no standard width rank 99.
func BreakpointOrder(selector string) int {
	for i, bp := range Breakpoints {
		if strings.Contains(selector, bp.Width) {
			return i + 1
		}
	}
	return unknownOrder
}

// SortSelectors orders selectors by breakpoint, keeping the given order
// among selectors of equal rank.
func SortSelectors(selectors []string) {
	sort.SliceStable(selectors, func(i, j int) bool {
		return BreakpointOrder(selectors[i]) < BreakpointOrder(selectors[j])
	})
}
