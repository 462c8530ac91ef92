package cssgen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Summary describes one generate run.
type Summary struct {
	Variant      string
	Themes       []string
	FilesScanned int
	ClassesUsed  int
	MediaQueries int
	Rules        int
	MediaBlocks  int
	Skipped      int
	Unresolved   []string
	OutputPath   string
	Bytes        int
}

// ReporterConfig controls terminal output.
type ReporterConfig struct {
	UseColors        bool
	PrintIssuedLines bool
}

// Reporter prints generate summaries and validation problems
type Reporter struct {
	w          io.Writer
	useColors  bool
	printLines bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config ReporterConfig) *Reporter {
	return &Reporter{
		w:          w,
		useColors:  config.UseColors,
		printLines: config.PrintIssuedLines,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(explicit bool) bool {
	// Explicit flag wins
	if explicit {
		return true
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintValidation reports a Validate failure for file.
// Format: file:line:col: message
func (r *Reporter) PrintValidation(file, content string, err error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCyan, file+":", r.useColors), err)
		return
	}

	location := fmt.Sprintf("%s:%d:%d:", file, verr.Line, verr.Column)
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCyan, location, r.useColors), verr.Msg)

	if !r.printLines {
		return
	}
	lines := strings.Split(content, "\n")
	if verr.Line < 1 || verr.Line > len(lines) {
		return
	}
	source := lines[verr.Line-1]
	fmt.Fprintf(r.w, "\t%s\n", source)
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, r.buildCaretIndicator(source, verr.Column), r.useColors))
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in the terminal.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the one-line result of a generate run
func (r *Reporter) PrintSummary(s Summary) {
	target := s.OutputPath
	if target == "" {
		target = "stdout"
	}

	fmt.Fprintf(r.w, "%s %s, %s from %s (%s)\n",
		RenderStyle(StyleGreen, "Generated", r.useColors),
		pluralizeCount(s.Rules, "rule", "rules"),
		pluralizeCount(s.MediaBlocks, "media block", "media blocks"),
		pluralizeCount(s.ClassesUsed, "class", "classes"),
		target)

	if s.Skipped > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray,
			fmt.Sprintf("%s without styles skipped", pluralizeCount(s.Skipped, "class", "classes")), r.useColors))
	}

	if len(s.Unresolved) > 0 {
		fmt.Fprintf(r.w, "%s %s: %s\n",
			RenderStyle(StyleYellow, "Unresolved", r.useColors),
			pluralizeCount(len(s.Unresolved), "token", "tokens"),
			strings.Join(s.Unresolved, ", "))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
