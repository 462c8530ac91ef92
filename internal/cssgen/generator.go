package cssgen

import (
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/yacobolo/tokencss/internal/schema"
	"github.com/yacobolo/tokencss/internal/usage"
)

const indent = "    "

// Generate renders CSS for every used class that resolves to declarations.
func Generate(snap usage.Snapshot, src StyleSource, opts Options) string {
	css, _ := Render(snap, src, opts)
	return css
}

// Render is Generate with statistics about the emitted document.
func Render(snap usage.Snapshot, src StyleSource, opts Options) (string, Stats) {
	var (
		b     strings.Builder
		stats Stats
	)

	classes := sortedNatural(snap.UsedClasses)

	// 1. Base rules, then state rules per class
	for _, class := range classes {
		res := src.GetStyles(class, "")
		if res == nil {
			stats.SkippedClass++
			continue
		}

		emitted := 0
		if len(res.Declarations) > 0 {
			writeRule(&b, "", "."+EscapeClass(class), declLines(res.Declarations))
			emitted++
		}

		if opts.States {
			for _, state := range sortedNatural(res.States) {
				lines := propLines(res.States[state])
				if len(lines) == 0 {
					continue
				}
				writeRule(&b, "", "."+EscapeClass(class)+":"+state, lines)
				emitted++
			}
		}

		if emitted == 0 {
			stats.SkippedClass++
		}
		stats.Rules += emitted
	}

	// 2. Media blocks ordered by breakpoint
	for _, blk := range collectMedia(snap, src, classes, opts) {
		var body strings.Builder
		rules := 0
		for _, r := range blk.rules {
			if len(r.lines) == 0 {
				continue
			}
			writeRule(&body, indent, "."+EscapeClass(r.class), r.lines)
			rules++
		}
		if rules == 0 {
			continue
		}

		b.WriteString(blk.selector)
		b.WriteString(" {\n")
		b.WriteString(body.String())
		b.WriteString("}\n\n")

		stats.Rules += rules
		stats.MediaBlocks++
	}

	return b.String(), stats
}

type mediaRule struct {
	class string // token as written in markup, e.g. "md:btn"
	lines []string
}

type mediaBlock struct {
	selector string
	rules    []mediaRule
}

// collectMedia gathers tracked media usage and, when enabled, media entries
// declared in the schema for used classes. Selectors keep first-seen order
// before being ranked by breakpoint.
func collectMedia(snap usage.Snapshot, src StyleSource, used []string, opts Options) []*mediaBlock {
	var order []string
	blocks := make(map[string]*mediaBlock)
	ruleIdx := make(map[string]map[string]int)

	rule := func(selector, class string) *mediaRule {
		blk, ok := blocks[selector]
		if !ok {
			blk = &mediaBlock{selector: selector}
			blocks[selector] = blk
			ruleIdx[selector] = make(map[string]int)
			order = append(order, selector)
		}
		i, ok := ruleIdx[selector][class]
		if !ok {
			blk.rules = append(blk.rules, mediaRule{class: class})
			i = len(blk.rules) - 1
			ruleIdx[selector][class] = i
		}
		return &blk.rules[i]
	}

	for _, mu := range snap.MediaQueries {
		for _, class := range sortedNatural(mu.Classes) {
			r := rule(mu.Selector, class)
			if res := src.GetStyles(lookupClass(class), ""); res != nil {
				r.lines = append(r.lines, declLines(res.Declarations)...)
			}
		}
	}

	if opts.SchemaMedia {
		for _, class := range used {
			res := src.GetStyles(class, "")
			if res == nil {
				continue
			}
			for _, selector := range sortedNatural(res.MediaQueries) {
				lines := propLines(res.MediaQueries[selector])
				if len(lines) == 0 {
					continue
				}
				r := rule(selector, class)
				r.lines = append(r.lines, lines...)
			}
		}
	}

	SortSelectors(order)

	out := make([]*mediaBlock, 0, len(order))
	for _, selector := range order {
		out = append(out, blocks[selector])
	}
	return out
}

func writeRule(b *strings.Builder, prefix, selector string, lines []string) {
	b.WriteString(prefix)
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(prefix)
	b.WriteString("}\n")
	if prefix == "" {
		b.WriteString("\n")
	}
}

func declLines(decls []schema.StyleProperty) []string {
	lines := make([]string, 0, len(decls))
	for _, d := range decls {
		lines = append(lines, d.Property+": "+d.Value+";")
	}
	return lines
}

// propLines renders an unordered property map in property name order.
func propLines(props map[string]string) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, name+": "+props[name]+";")
	}
	return lines
}

func sortedNatural[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}
