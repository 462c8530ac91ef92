package cssgen

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/tokencss/internal/resolver"
)

// VerboseReporter handles detailed statistics and style breakdowns
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed generate statistics
func (r *VerboseReporter) PrintStatistics(s Summary) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Generation Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Theme Variant:   %s\n", s.Variant)
	fmt.Fprintf(r.w, "Themes Loaded:   %s\n", strings.Join(s.Themes, ", "))
	fmt.Fprintf(r.w, "Files Scanned:   %d\n", s.FilesScanned)
	fmt.Fprintf(r.w, "Classes Used:    %d\n", s.ClassesUsed)
	fmt.Fprintf(r.w, "Media Queries:   %d\n", s.MediaQueries)
	fmt.Fprintf(r.w, "Rules Emitted:   %d\n", s.Rules)
	fmt.Fprintf(r.w, "Media Blocks:    %d\n", s.MediaBlocks)
	fmt.Fprintf(r.w, "Skipped Classes: %d\n", s.Skipped)
	fmt.Fprintf(r.w, "Output Size:     %d bytes\n", s.Bytes)
}

// PrintStyle shows a resolved style grouped by property category
func (r *VerboseReporter) PrintStyle(path, variant string, res *resolver.StyleResult) {
	title := path
	if variant != "" {
		title += " (" + variant + ")"
	}
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))

	if res.Empty() {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "  no styles", r.useColors))
		return
	}

	if res.Class != "" {
		fmt.Fprintf(r.w, "  class: %s\n", res.Class)
	}

	groups := Categorize(res.Declarations)
	for _, cat := range CategoryOrder {
		props := groups[cat]
		if len(props) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGreen, string(cat), r.useColors))
		for _, p := range props {
			value := p.Value
			if p.IsToken {
				value = RenderStyle(StyleYellow, value, r.useColors)
			}
			fmt.Fprintf(r.w, "    %s: %s\n", p.Name, value)
		}
	}

	r.printBlocks("States", res.States)
	r.printBlocks("Media", res.MediaQueries)
}

func (r *VerboseReporter) printBlocks(title string, blocks map[string]map[string]string) {
	if len(blocks) == 0 {
		return
	}

	fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGreen, title, r.useColors))
	keys := make([]string, 0, len(blocks))
	for k := range blocks {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := BreakpointOrder(keys[i]), BreakpointOrder(keys[j])
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		fmt.Fprintf(r.w, "    %s\n", k)
		for _, line := range propLines(blocks[k]) {
			fmt.Fprintf(r.w, "      %s\n", line)
		}
	}
}

// PrintWarnings shows warnings collected during a run
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
